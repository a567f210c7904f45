// Command parse is the grammar engine's command-line driver: given a
// lexicon data directory, it parses one or more sentences and prints
// their derivations, mirroring main.cpp's driver loop over its
// hard-coded seed sentence list.
package main

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	grammatical "github.com/eivinsam/grammatical"
)

var rootCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse English-fragment sentences against a grammar lexicon",
}

var dataDir string

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "data", "path to the grammar data directory")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadLexicon() (*grammatical.Lexicon, error) {
	return grammatical.Load(dataDir)
}

func printResults(sentence string, results []grammatical.Result) {
	fmt.Printf("%s\n", sentence)
	if len(results) == 0 {
		fmt.Println("  (no derivation)")
		return
	}
	for _, r := range results {
		var tree strings.Builder
		for i, p := range r.Phrases {
			if i > 0 {
				tree.WriteByte(' ')
			}
			tree.WriteString(p.String())
		}
		fmt.Printf("  %s\n", tree.String())
		for _, d := range r.Diagnostics {
			fmt.Printf("    ! %s\n", d)
		}
	}
}

func init() {
	cmd := &cobra.Command{
		Use:   "parse <text>...",
		Short: "Parse one or more sentences given on the command line",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lex, err := loadLexicon()
			if err != nil {
				return fmt.Errorf("loading lexicon: %w", err)
			}
			if len(args) > 0 {
				for _, s := range args {
					printResults(s, grammatical.Analyze(s, lex))
				}
				return nil
			}
			sc := bufio.NewScanner(os.Stdin)
			for sc.Scan() {
				line := strings.TrimSpace(sc.Text())
				if line == "" {
					continue
				}
				printResults(line, grammatical.Analyze(line, lex))
			}
			return sc.Err()
		},
	}
	rootCmd.AddCommand(cmd)
}

func init() {
	cmd := &cobra.Command{
		Use:   "lexicon",
		Short: "List every lexeme and word morpheme the data directory declares",
		RunE: func(cmd *cobra.Command, args []string) error {
			lex, err := loadLexicon()
			if err != nil {
				return fmt.Errorf("loading lexicon: %w", err)
			}
			names := make([]string, 0, len(lex.Lexemes))
			for name := range lex.Lexemes {
				names = append(names, name)
			}
			sort.Strings(names)
			fmt.Println("lexemes:")
			for _, name := range names {
				fmt.Printf("  %s\n", name)
			}

			words := make([]string, 0, len(lex.Words))
			for orth := range lex.Words {
				words = append(words, orth)
			}
			sort.Strings(words)
			fmt.Println("words:")
			for _, orth := range words {
				fmt.Printf("  %s (%d reading(s))\n", orth, len(lex.Words[orth]))
			}
			return nil
		},
	}
	rootCmd.AddCommand(cmd)
}

func init() {
	cmd := &cobra.Command{
		Use:   "examples",
		Short: "Parse every sentence in the lexicon's examples.txt",
		RunE: func(cmd *cobra.Command, args []string) error {
			lex, err := loadLexicon()
			if err != nil {
				return fmt.Errorf("loading lexicon: %w", err)
			}
			data, err := os.ReadFile(dataDir + "/examples.txt")
			if err != nil {
				return fmt.Errorf("reading examples.txt: %w", err)
			}
			for _, line := range strings.Split(string(data), "\n") {
				line = strings.TrimSpace(line)
				if line == "" || strings.HasPrefix(line, "#") {
					continue
				}
				printResults(line, grammatical.Analyze(line, lex))
			}
			return nil
		},
	}
	rootCmd.AddCommand(cmd)
}
