package simplex

import (
	"fmt"
	"io/ioutil"
	"os"
	"strconv"

	"github.com/go-yaml/yaml"
	"github.com/spf13/pflag"
)

type options struct {
	options []ConfigOption
	err     error
}

// ParseCommandLine configures rendering from command line options or from a YAML
// configuration file passed with the -c flag.  Returns a slice of functional options that
// can be applied to the configuration.
func ParseCommandLine() ([]ConfigOption, error) {
	pf := createFlagSet()
	return parse(os.Args[1:], pf)
}

func parse(args []string, pf *pflag.FlagSet) ([]ConfigOption, error) {
	options := options{}
	if err := pf.ParseAll(args, parseFlag(&options)); err != nil {
		return options.options, err
	}
	if len(pf.Args()) > 0 {
		return options.options, fmt.Errorf("unexpected arguments: %v", pf.Args())
	}
	return options.options, options.err
}

func createFlagSet() *pflag.FlagSet {
	pf := pflag.NewFlagSet("simplex", pflag.ContinueOnError)
	pf.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of simplex:\nsimplex <options>\n")
		fmt.Fprintf(os.Stderr, "\n%s", pf.FlagUsagesWrapped(10))
	}

	pf.StringP("config", "c", "", "Use yaml configuration file")
	pf.StringP("size", "s", "256x256", "Number of samples as WxH")
	pf.Float64("scale", 0.05, "Distance in noise space between neighboring samples")
	pf.String("offset", "0,0", "Noise space coordinate of the first sample as x,y")
	pf.Uint64("seed", 0, "Seed for a reproducible field.  Without a seed the field is random.")
	pf.String("seed-file", "", "Read the 256 permutation bytes from this file")
	pf.StringP("output", "o", "", "Output file (default: stdout)")
	pf.StringP("format", "f", FormatPNG, "Output format: png, text or csv")
	pf.Bool("no-error-reports", false, "Do not send reports when there are unexpected errors")

	return pf
}

func parseFlag(o *options) func(*pflag.Flag, string) error {
	return func(flag *pflag.Flag, value string) error {
		switch flag.Name {
		case "config":
			opts, err := parseFromFile(value)
			if err != nil {
				o.err = err
				return err
			}
			o.options = append(o.options, opts...)
		default:
			option, err := handleOption(flag.Name, value)
			if err != nil {
				o.err = err
				return err
			}
			o.options = append(o.options, option)
		}
		return nil
	}
}

func handleOption(name string, value string) (ConfigOption, error) {
	switch name {
	case "size":
		return Size(value), nil
	case "scale":
		return Scale(value), nil
	case "offset":
		return Offset(value), nil
	case "seed":
		return Seed(value), nil
	case "seed-file":
		return SeedFile(value), nil
	case "output":
		return Output(value), nil
	case "format":
		return Format(value), nil
	case "no-error-reports":
		off, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("could not convert no-error-reports to a boolean")
		}
		if !off {
			return ErrorReports(), nil
		}
		return NoErrorReports(), nil
	default:
		return nil, fmt.Errorf("Unknown option: %s", name)
	}
}

func parseFromFile(fpath string) ([]ConfigOption, error) {
	var options []ConfigOption
	data, err := ioutil.ReadFile(fpath)
	if err != nil {
		return options, err
	}

	cfg := make(map[string]interface{})
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return options, err
	}
	for k, v := range cfg {
		var value string
		switch v := v.(type) {
		case string:
			value = v
		case int:
			value = strconv.Itoa(v)
		case uint64:
			value = strconv.FormatUint(v, 10)
		case float64:
			value = strconv.FormatFloat(v, 'g', -1, 64)
		case bool:
			value = strconv.FormatBool(v)
		default:
			return options, fmt.Errorf("Could not process config key %s, unknown type", k)
		}
		opt, err := handleOption(k, value)
		if err != nil {
			return options, err
		}
		options = append(options, opt)
	}
	return options, nil
}
