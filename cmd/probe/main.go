// Package main is the main entrypoint to the probe application.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"probe/src/conf"
	"probe/src/path"
	"probe/src/repl"
	"probe/src/shape"
	"probe/src/value"
)

var (
	flagFormat  string
	flagVerbose bool
	flagDefault string
)

var logger = zap.NewNop()

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "probe",
	Short:         "Inspect the shape of JSON and YAML documents",
	Long:          "Probe decodes JSON/YAML documents and evaluates safe-navigation paths and structural shape checks against them.",
	Version:       conf.FullVersion(),
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if flagFormat != "json" && flagFormat != "text" {
			return fmt.Errorf("invalid format %q, expected json or text", flagFormat)
		}
		if flagVerbose {
			dev, err := zap.NewDevelopment()
			if err != nil {
				return err
			}
			logger = dev
		}
		return nil
	},
	// No Run — prints help by default.
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format: json|text")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")

	getCmd.Flags().StringVar(&flagDefault, "default", "", "value printed when the path does not resolve")

	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(kindCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(vaultCmd)
}

var getCmd = &cobra.Command{
	Use:   "get <path> [file]",
	Short: "Evaluate a path against a document",
	Long:  "Evaluates a safe-navigation path against a JSON/YAML document read from file or stdin. A path that does not resolve prints the --default value when set and exits 1 otherwise.",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(args, 1)
		if err != nil {
			return err
		}
		p, err := path.Compile(args[0])
		if err != nil {
			return err
		}
		val, found := p.Eval(doc)
		logger.Debug("evaluated path", zap.String("path", args[0]), zap.Bool("found", found))
		if !found {
			if cmd.Flags().Changed("default") {
				fmt.Fprintln(os.Stdout, flagDefault)
				return nil
			}
			return fmt.Errorf("%s: not found", args[0])
		}
		return printValue(val)
	},
}

var keysCmd = &cobra.Command{
	Use:   "keys <path> [file]",
	Short: "List the field names of the object at a path",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		val, err := evalArg(args)
		if err != nil {
			return err
		}
		obj, isObj := value.AsObject(val)
		if !isObj {
			return fmt.Errorf("%s: not an object", args[0])
		}
		if flagFormat == "json" {
			return printJSON(obj.Keys())
		}
		fmt.Fprintln(os.Stdout, strings.Join(obj.Keys(), "\n"))
		return nil
	},
}

var kindCmd = &cobra.Command{
	Use:   "kind <path> [file]",
	Short: "Print the kind of the value at a path",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		val, err := evalArg(args)
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, val.Kind())
		return nil
	},
}

var checkCmd = &cobra.Command{
	Use:   "check <shapefile> [file]",
	Short: "Check a document against a shapefile",
	Long:  "Checks a JSON/YAML document against an object shape described in a YAML shapefile, printing a field-by-field diff when it does not conform.",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		defn, err := shape.ParseYAML(data)
		if err != nil {
			return err
		}
		doc, err := loadDocument(args, 1)
		if err != nil {
			return err
		}
		obj, isObj := defn.(*shape.Object)
		if !isObj {
			return fmt.Errorf("shapefile %s does not describe an object", args[0])
		}
		diff := obj.Diff(doc)
		fmt.Fprintln(os.Stdout, diff)
		if !diff.Ok() {
			os.Exit(1)
		}
		return nil
	},
}

var replCmd = &cobra.Command{
	Use:   "repl [file]",
	Short: "Interactively probe a document",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(args, 0)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "%v\n", conf.FullVersion())
		return repl.New(doc, os.Stderr).Run()
	},
}

func evalArg(args []string) (value.Value, error) {
	doc, err := loadDocument(args, 1)
	if err != nil {
		return nil, err
	}
	p, err := path.Compile(args[0])
	if err != nil {
		return nil, err
	}
	val, found := p.Eval(doc)
	if !found {
		return nil, fmt.Errorf("%s: not found", args[0])
	}
	return val, nil
}

func loadDocument(args []string, idx int) (value.Value, error) {
	if len(args) <= idx {
		logger.Debug("reading document from stdin")
		return value.Decode(os.Stdin)
	}
	name := args[idx]
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	logger.Debug("read document", zap.String("file", name), zap.Int("bytes", len(data)))
	switch filepath.Ext(name) {
	case ".yaml", ".yml":
		return value.DecodeYAML(data)
	case ".json":
		return value.DecodeJSON(data)
	default:
		return value.Decode(bytes.NewReader(data))
	}
}

func printValue(val value.Value) error {
	if flagFormat == "json" {
		return printJSON(value.ToGo(val))
	}
	fmt.Fprintln(os.Stdout, val.String())
	return nil
}

func printJSON(val any) error {
	data, err := json.MarshalIndent(val, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, string(data))
	return nil
}
