package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/shadowgen-hq/shadowgen/internal/config"
	"github.com/shadowgen-hq/shadowgen/internal/emitter"
	"github.com/shadowgen-hq/shadowgen/internal/lexer"
	"github.com/shadowgen-hq/shadowgen/internal/scanner"
)

// operationCmd builds one subcommand per emit operation. All three share
// the same flags and pipeline; only the registry lookup differs.
func operationCmd(name, short string) *cobra.Command {
	var (
		filePath        string
		class           string
		methodBlacklist string
		fieldBlacklist  string
		shadowAnno      string
		finalAnno       string
	)

	cmd := &cobra.Command{
		Use:   name,
		Short: short,
		Long: short + `.

Source is read from --file, or from stdin when no file is given.
Configuration is resolved from flags, then environment variables
(CLASS_FILTER, METHOD_BLACKLIST, FIELD_BLACKLIST, SHADOW_ANNOTATION,
FINAL_ANNOTATION), then a .shadowgen.yaml next to the source file.

Example:
  shadowgen ` + name + ` -f EntityRenderer.java --class AUTO`,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, sourceDir, err := readSource(filePath)
			if err != nil {
				return err
			}

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			proj, err := config.LoadProjectConfig(sourceDir)
			if err != nil {
				return fmt.Errorf("failed to load project config: %w", err)
			}
			cfg.ApplyProject(proj)

			// Flags win over env and project file.
			if class != "" {
				cfg.ClassFilter = class
			}
			if methodBlacklist != "" {
				cfg.MethodBlacklist = strings.Split(methodBlacklist, ",")
			}
			if fieldBlacklist != "" {
				cfg.FieldBlacklist = strings.Split(fieldBlacklist, ",")
			}
			if shadowAnno != "" {
				cfg.ShadowAnnotation = shadowAnno
			}
			if finalAnno != "" {
				cfg.FinalAnnotation = finalAnno
			}

			registry := emitter.NewRegistry()
			op, err := registry.Get(name)
			if err != nil {
				return err
			}

			tokens := lexer.Tokenize(source)
			decls := scanner.Classify(lexer.GroupLines(tokens))

			log.Debug().
				Int("tokens", len(tokens)).
				Int("declarations", len(decls)).
				Str("operation", name).
				Msg("classified source")

			lines, err := op.Emit(decls, emitter.Options{
				ClassFilter:      cfg.ClassFilter,
				MethodBlacklist:  cfg.MethodBlacklist,
				FieldBlacklist:   cfg.FieldBlacklist,
				ShadowAnnotation: cfg.ShadowAnnotation,
				FinalAnnotation:  cfg.FinalAnnotation,
			})
			if err != nil {
				return err
			}

			for _, line := range lines {
				fmt.Println(line)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&filePath, "file", "f", "", "Java source file (default: stdin)")
	cmd.Flags().StringVarP(&class, "class", "c", "", "Class filter (AUTO selects the first declared class)")
	cmd.Flags().StringVarP(&methodBlacklist, "method-blacklist", "m", "", "Comma-separated method names to skip")
	cmd.Flags().StringVarP(&fieldBlacklist, "field-blacklist", "b", "", "Comma-separated field names to skip")
	cmd.Flags().StringVar(&shadowAnno, "shadow-annotation", "", "Override the @Shadow marker line")
	cmd.Flags().StringVar(&finalAnno, "final-annotation", "", "Override the @Final marker line")

	return cmd
}

// readSource reads the input text and reports the directory searched for a
// project config file.
func readSource(filePath string) (string, string, error) {
	if filePath == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), ".", nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", "", fmt.Errorf("failed to read file: %w", err)
	}
	return string(data), filepath.Dir(filePath), nil
}
