package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	response "orcamentos_arq/internal/adapter/http/dto/response"
	"orcamentos_arq/internal/domain/entities"
	"orcamentos_arq/internal/domain/pricing"
	"orcamentos_arq/internal/usecase"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// calcInput mirrors the POST /v1/calculations body and also accepts YAML.
type calcInput struct {
	ServiceType    entities.ServiceType    `json:"serviceType" yaml:"serviceType"`
	ServiceDetails entities.ServiceDetails `json:"serviceDetails" yaml:"serviceDetails"`
}

func newCalcCmd(opts *rootOptions) *cobra.Command {
	var file string

	c := &cobra.Command{
		Use:   "calc",
		Short: "Calculate a quote and print it as JSON",
		Long: `Reads {serviceType, serviceDetails} from --file or stdin (JSON or YAML)
and prints the calculation in the same shape as the API.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := readCalcInput(cmd.InOrStdin(), file)
			if err != nil {
				return err
			}

			tables, err := opts.loadTables()
			if err != nil {
				return err
			}
			calculator, err := pricing.NewCalculator(tables)
			if err != nil {
				return err
			}

			uc := usecase.NewCalculationUseCase(calculator, nil, opts.logger())
			calc, err := uc.Calculate(cmd.Context(), in.ServiceType, in.ServiceDetails)
			if err != nil {
				var verr *pricing.ValidationError
				if errors.As(err, &verr) {
					for _, f := range verr.Fields {
						fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", f.Field, f.Message)
					}
				}
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(response.FromCalculationResult(in.ServiceType, in.ServiceDetails, calc, time.Now()))
		},
	}

	c.Flags().StringVarP(&file, "file", "f", "", "request file (.json, .yaml or .yml); stdin when empty")
	return c
}

func readCalcInput(stdin io.Reader, file string) (calcInput, error) {
	var (
		data []byte
		err  error
	)
	if file == "" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(file)
	}
	if err != nil {
		return calcInput{}, fmt.Errorf("read request: %w", err)
	}

	var in calcInput
	if isYAML(file, data) {
		err = yaml.Unmarshal(data, &in)
	} else {
		err = json.Unmarshal(data, &in)
	}
	if err != nil {
		return calcInput{}, fmt.Errorf("parse request: %w", err)
	}
	return in, nil
}

// isYAML decides by extension, or by content when reading stdin.
func isYAML(file string, data []byte) bool {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".yaml", ".yml":
		return true
	case ".json":
		return false
	}
	trimmed := strings.TrimSpace(string(data))
	return !strings.HasPrefix(trimmed, "{")
}
