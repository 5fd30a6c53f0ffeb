package entities

import "testing"

func TestEstimateStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to EstimateStatus
		want     bool
	}{
		{EstimateStatusPendente, EstimateStatusAprovado, true},
		{EstimateStatusPendente, EstimateStatusRejeitado, true},
		{EstimateStatusPendente, EstimateStatusCancelado, true},
		{EstimateStatusPendente, EstimateStatusPendente, false},
		{EstimateStatusAprovado, EstimateStatusCancelado, true},
		{EstimateStatusAprovado, EstimateStatusRejeitado, false},
		{EstimateStatusRejeitado, EstimateStatusAprovado, false},
		{EstimateStatusCancelado, EstimateStatusAprovado, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Fatalf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.want, got)
		}
	}
}

func TestPaymentStatusFromProvider(t *testing.T) {
	if got := PaymentStatusFromProvider("approved"); got != PaymentStatusAprovado {
		t.Fatalf("expected aprovado, got %s", got)
	}
	if got := PaymentStatusFromProvider("rejected"); got != PaymentStatusNegado {
		t.Fatalf("expected negado, got %s", got)
	}
	if got := PaymentStatusFromProvider("in_process"); got != PaymentStatusPendente {
		t.Fatalf("expected pendente, got %s", got)
	}
}

func TestServiceType(t *testing.T) {
	if !ServiceTypeDesign.Valid() || ServiceType("painting").Valid() {
		t.Fatalf("unexpected Valid result")
	}
	if !ServiceTypeDecoration.UsesEnvironmentTiers() || !ServiceTypeProduction.UsesEnvironmentTiers() || ServiceTypeDesign.UsesEnvironmentTiers() {
		t.Fatalf("unexpected UsesEnvironmentTiers result")
	}
}
