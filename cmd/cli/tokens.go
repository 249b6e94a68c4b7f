package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shadowgen-hq/shadowgen/internal/lexer"
	"github.com/shadowgen-hq/shadowgen/internal/scanner"
)

func tokensCmd() *cobra.Command {
	var filePath string

	cmd := &cobra.Command{
		Use:   "tokens",
		Short: "Dump the token stream and detected declarations for a source file",
		RunE: func(cmd *cobra.Command, args []string) error {
			source, _, err := readSource(filePath)
			if err != nil {
				return err
			}

			tokens := lexer.Tokenize(source)
			lines := lexer.GroupLines(tokens)
			decls := scanner.Classify(lines)

			fmt.Printf("Tokens: %d\n", len(tokens))
			fmt.Printf("Lines: %d\n", len(lines))
			fmt.Printf("Declarations: %d\n\n", len(decls))

			for i, tok := range tokens {
				if tok.Category == lexer.CategoryWhitespace || tok.Category == lexer.CategoryNewline {
					continue
				}
				fmt.Printf("%4d. %-13s %q\n", i, tok.Category, tok.Text)
			}

			fmt.Println()
			for i, d := range decls {
				enclosing := ""
				if d.EnclosingClass != "" {
					enclosing = " in " + d.EnclosingClass
				}
				fmt.Printf("%d. %s %s%s\n", i+1, d.Kind, d.Name, enclosing)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&filePath, "file", "f", "", "Java source file (default: stdin)")

	return cmd
}
