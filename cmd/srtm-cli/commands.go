package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	srtm "github.com/nelsonberm/go-srtm"
	"github.com/nelsonberm/go-srtm/internal/config"
	"github.com/nelsonberm/go-srtm/internal/logging"
	"github.com/nelsonberm/go-srtm/pkg/prompt"
	"github.com/nelsonberm/go-srtm/pkg/registry"
)

// errOperationFailed marks a rendered failure so main exits non-zero
// without printing a second error line.
var errOperationFailed = errors.New("operation failed")

type rootFlags struct {
	configPath  string
	baseURL     string
	renderer    string
	timeoutMS   int
	output      string
	interactive bool
	data        string
	sets        []string
	themeName   string
	variant     string
}

func newRootCommand() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:           "srtm-cli",
		Short:         "Cliente del registro de dispositivos móviles",
		Long:          "srtm-cli ejecuta operaciones del registro de dispositivos móviles (listas positiva y negativa) contra la API intermediaria.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "ruta del archivo de configuración YAML")
	pf.StringVar(&flags.baseURL, "base-url", "", "URL base de la API")
	pf.StringVar(&flags.renderer, "renderer", "", "renderizador de salida (term, html, json)")
	pf.IntVar(&flags.timeoutMS, "timeout-ms", 0, "tiempo máximo por solicitud en milisegundos")
	pf.StringVarP(&flags.output, "output", "o", "", "archivo de salida (stdout si está vacío)")
	pf.StringVar(&flags.themeName, "theme", "", "tema de estilos")
	pf.StringVar(&flags.variant, "variant", "", "variante del tema")

	root.AddCommand(newOpsCommand(flags))
	for _, spec := range registry.Endpoints() {
		root.AddCommand(newOperationCommand(flags, spec))
	}
	return root
}

func newOpsCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "Lista las operaciones disponibles",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := buildClient(cmd.Context(), flags)
			if err != nil {
				return err
			}
			for _, id := range client.Operations() {
				form, err := client.Form(id)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-30s %s %s\n", id, form.Method, form.Path)
			}
			return nil
		},
	}
}

// newOperationCommand derives one subcommand per registry operation.
// GET operations accept the IMEI as a positional argument.
func newOperationCommand(flags *rootFlags, spec registry.EndpointSpec) *cobra.Command {
	use := commandName(spec)
	isGet := spec.Method == "GET"
	if isGet {
		use += " [imei]"
	}

	cmd := &cobra.Command{
		Use:   use,
		Short: fmt.Sprintf("%s %s", spec.Method, spec.Path),
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := buildClient(cmd.Context(), flags)
			if err != nil {
				return err
			}

			payload, err := collectPayload(cmd.Context(), flags, client, spec, args)
			if err != nil {
				return err
			}

			o, err := client.Execute(cmd.Context(), spec.Name, payload)
			if err != nil {
				return err
			}

			out, err := client.Render(cmd.Context(), o, flags.renderer)
			if err != nil {
				return err
			}
			if err := writeOutput(cmd, flags.output, out); err != nil {
				return err
			}

			if o.Failed() {
				return errOperationFailed
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&flags.interactive, "interactive", "i", false, "solicita los campos de forma interactiva")
	cmd.Flags().StringVar(&flags.data, "data", "", "payload completo en JSON")
	cmd.Flags().StringArrayVar(&flags.sets, "set", nil, "campo individual, formato clave=valor (repetible)")
	return cmd
}

func commandName(spec registry.EndpointSpec) string {
	name := strings.TrimPrefix(spec.Path, "/")
	return strings.ReplaceAll(name, "/", "-")
}

func buildClient(ctx context.Context, flags *rootFlags) (*srtm.Client, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}
	if flags.baseURL != "" {
		cfg.BaseURL = flags.baseURL
	}
	if flags.timeoutMS > 0 {
		cfg.TimeoutMS = flags.timeoutMS
	}
	if flags.renderer != "" {
		cfg.Renderer = flags.renderer
	}
	if flags.themeName != "" {
		cfg.Theme.Name = flags.themeName
	}
	if flags.variant != "" {
		cfg.Theme.Variant = flags.variant
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return nil, err
	}

	client, err := srtm.New(ctx, cfg, srtm.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	return client, nil
}

// collectPayload merges, in increasing precedence: --data JSON, --set
// pairs, the positional IMEI, and finally an interactive session when
// requested.
func collectPayload(ctx context.Context, flags *rootFlags, client *srtm.Client, spec registry.EndpointSpec, args []string) (map[string]string, error) {
	payload := make(map[string]string)

	if flags.data != "" {
		if err := json.Unmarshal([]byte(flags.data), &jsonPayload{payload}); err != nil {
			return nil, fmt.Errorf("parse --data: %w", err)
		}
	}
	for _, pair := range flags.sets {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid --set %q, expected clave=valor", pair)
		}
		payload[key] = value
	}
	if len(args) == 1 {
		payload["imei"] = args[0]
	}

	if flags.interactive {
		form, err := client.Form(spec.Name)
		if err != nil {
			return nil, err
		}
		session := prompt.NewSession(prompt.NewSurveyDriver())
		collected, err := session.Run(ctx, form)
		if err != nil {
			return nil, err
		}
		for key, value := range collected {
			payload[key] = value
		}
	}
	return payload, nil
}

// jsonPayload decodes an object of scalars, stringifying numbers and
// booleans the way the API expects.
type jsonPayload struct {
	target map[string]string
}

func (p *jsonPayload) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for key, value := range raw {
		switch v := value.(type) {
		case string:
			p.target[key] = v
		case float64:
			p.target[key] = fmt.Sprintf("%v", v)
		case bool:
			p.target[key] = fmt.Sprintf("%t", v)
		case nil:
		default:
			return fmt.Errorf("field %q must be a scalar", key)
		}
	}
	return nil
}

func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" {
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Resultado escrito en %s\n", path)
	return nil
}
