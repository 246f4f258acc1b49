package simplex

import (
	"io/ioutil"
	"os"
	"strings"
	"testing"

	"github.com/go-yaml/yaml"
	"github.com/stretchr/testify/assert"
)

func TestParseFlags(t *testing.T) {
	tt := []struct {
		Name     string
		Cmdline  string
		Expected []ConfigOption
		Error    bool
	}{
		{Name: "size", Cmdline: "--size 64x32", Expected: []ConfigOption{Size("64x32")}, Error: false},
		{Name: "size short", Cmdline: "-s 64x32", Expected: []ConfigOption{Size("64x32")}, Error: false},
		{Name: "scale", Cmdline: "--scale 0.25", Expected: []ConfigOption{Scale("0.25")}, Error: false},
		{Name: "offset", Cmdline: "--offset 10,-4.5", Expected: []ConfigOption{Offset("10,-4.5")}, Error: false},
		{Name: "seed", Cmdline: "--seed 1337", Expected: []ConfigOption{Seed("1337")}, Error: false},
		{Name: "seed-file", Cmdline: "--seed-file /path/to/seed", Expected: []ConfigOption{SeedFile("/path/to/seed")}, Error: false},
		{Name: "output", Cmdline: "-o out.png", Expected: []ConfigOption{Output("out.png")}, Error: false},
		{Name: "format", Cmdline: "--format csv", Expected: []ConfigOption{Format("csv")}, Error: false},
		{Name: "no-error-reports", Cmdline: "--no-error-reports", Expected: []ConfigOption{NoErrorReports()}, Error: false},
		{Name: "no-error-reports true", Cmdline: "--no-error-reports=true", Expected: []ConfigOption{NoErrorReports()}, Error: false},
		{Name: "no-error-reports false", Cmdline: "--no-error-reports=false", Expected: []ConfigOption{ErrorReports()}, Error: false},
		{Name: "multiple", Cmdline: "--seed 3 --size 8x8 -f text", Expected: []ConfigOption{Seed("3"), Size("8x8"), Format("text")}, Error: false},
		{Name: "error on unknown flag", Cmdline: "--does-not-exist", Expected: []ConfigOption{}, Error: true},
		{Name: "error on positional argument", Cmdline: "--seed 3 extra", Expected: []ConfigOption{}, Error: true},
	}

	for _, tc := range tt {
		t.Run(tc.Name, func(t *testing.T) {
			pf := createFlagSet()
			options, err := parse(strings.Split(tc.Cmdline, " "), pf)
			if tc.Error {
				assert.Error(t, err)
			} else {
				expected, received := createComparisonConfigs(tc.Expected, options)
				assert.Equal(t, expected, received)
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseYAML(t *testing.T) {
	tt := []struct {
		Name     string
		Yaml     map[string]interface{}
		Expected []ConfigOption
		Error    bool
	}{
		{Name: "size", Yaml: map[string]interface{}{"size": "64x32"}, Expected: []ConfigOption{Size("64x32")}, Error: false},
		{Name: "scale", Yaml: map[string]interface{}{"scale": 0.25}, Expected: []ConfigOption{Scale("0.25")}, Error: false},
		{Name: "scale integer", Yaml: map[string]interface{}{"scale": 2}, Expected: []ConfigOption{Scale("2")}, Error: false},
		{Name: "offset", Yaml: map[string]interface{}{"offset": "10,-4.5"}, Expected: []ConfigOption{Offset("10,-4.5")}, Error: false},
		{Name: "seed", Yaml: map[string]interface{}{"seed": 1337}, Expected: []ConfigOption{Seed("1337")}, Error: false},
		{Name: "seed-file", Yaml: map[string]interface{}{"seed-file": "/path/to/seed"}, Expected: []ConfigOption{SeedFile("/path/to/seed")}, Error: false},
		{Name: "output", Yaml: map[string]interface{}{"output": "out.png"}, Expected: []ConfigOption{Output("out.png")}, Error: false},
		{Name: "format", Yaml: map[string]interface{}{"format": "text"}, Expected: []ConfigOption{Format("text")}, Error: false},
		{Name: "no-error-reports", Yaml: map[string]interface{}{"no-error-reports": true}, Expected: []ConfigOption{NoErrorReports()}, Error: false},
		{Name: "no-error-reports false", Yaml: map[string]interface{}{"no-error-reports": false}, Expected: []ConfigOption{ErrorReports()}, Error: false},
		{Name: "no-error-reports string false", Yaml: map[string]interface{}{"no-error-reports": "false"}, Expected: []ConfigOption{ErrorReports()}, Error: false},
		{Name: "no-error-reports string true", Yaml: map[string]interface{}{"no-error-reports": "true"}, Expected: []ConfigOption{NoErrorReports()}, Error: false},
		{Name: "error on non-boolean no-error-reports", Yaml: map[string]interface{}{"no-error-reports": "maybe"}, Expected: []ConfigOption{}, Error: true},
		{Name: "error on unknown key", Yaml: map[string]interface{}{"does-not-exist": "test"}, Expected: []ConfigOption{}, Error: true},
		{Name: "error on list value", Yaml: map[string]interface{}{"size": []string{"1x1", "2x2"}}, Expected: []ConfigOption{}, Error: true},
	}

	for _, tc := range tt {
		t.Run(tc.Name, func(t *testing.T) {
			f, err := ioutil.TempFile("", "simplexcfg")
			if err != nil {
				t.Fatalf("unexpected error creating temp config file: %s", err)
			}
			defer os.Remove(f.Name())

			y, err := yaml.Marshal(tc.Yaml)
			if err != nil {
				t.Fatalf("unexpected error marshaling YAML: %s", err)
			}
			if _, err := f.Write(y); err != nil {
				t.Fatalf("unexpected error writing to file: %s", err)
			}
			if err := f.Close(); err != nil {
				t.Fatalf("unexpected error closing file: %s", err)
			}

			pf := createFlagSet()
			options, err := parse([]string{"-c", f.Name()}, pf)
			if tc.Error {
				assert.Error(t, err)
			} else {
				expected, received := createComparisonConfigs(tc.Expected, options)
				assert.Equal(t, expected, received)
				assert.NoError(t, err)
			}
		})
	}
}

// Flag values are passed through as strings and checked when the options are applied.
func TestParseInvalidValues(t *testing.T) {
	noTerminal(t)
	tt := []struct {
		Name    string
		Cmdline string
	}{
		{Name: "non-numeric seed", Cmdline: "--seed abc"},
		{Name: "non-numeric scale", Cmdline: "--scale big"},
		{Name: "zero width", Cmdline: "--size 0x10"},
		{Name: "unknown format", Cmdline: "--format gif"},
	}

	for _, tc := range tt {
		t.Run(tc.Name, func(t *testing.T) {
			pf := createFlagSet()
			options, err := parse(strings.Split(tc.Cmdline, " "), pf)
			assert.NoError(t, err)

			c, errs := NewConfig(options...)
			assert.Len(t, errs, 1)
			assert.Equal(t, Config{}, c)
		})
	}
}

func TestParseErrorReports(t *testing.T) {
	noTerminal(t)
	tt := []struct {
		Name    string
		Args    []string
		Reports bool
	}{
		{Name: "default", Args: []string{}, Reports: true},
		{Name: "switch", Args: []string{"--no-error-reports"}, Reports: false},
		{Name: "explicit false", Args: []string{"--no-error-reports=false"}, Reports: true},
	}

	for _, tc := range tt {
		t.Run(tc.Name, func(t *testing.T) {
			options, err := parse(tc.Args, createFlagSet())
			assert.NoError(t, err)
			c, errs := NewConfig(options...)
			assert.Empty(t, errs)
			assert.Equal(t, tc.Reports, c.ErrorReports)
		})
	}
}

func TestParseMissingConfigFile(t *testing.T) {
	pf := createFlagSet()
	_, err := parse([]string{"-c", "/does/not/exist.yml"}, pf)
	assert.Error(t, err)
}

func createComparisonConfigs(expected []ConfigOption, received []ConfigOption) (Config, Config) {
	expectedConfig := Config{}
	for _, eo := range expected {
		eo(&expectedConfig)
	}
	receivedConfig := Config{}
	for _, to := range received {
		to(&receivedConfig)
	}
	return expectedConfig, receivedConfig
}
