package style

import (
	"encoding/json"
	"fmt"
	"io"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// PrintJSON 将任意值以缩进 JSON 输出到 writer
func PrintJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

// PrintYAML 将任意值以 YAML 输出到 writer
func PrintYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	defer func() { _ = enc.Close() }()
	return enc.Encode(v)
}

// PrintTOML 将任意值以 TOML 输出到 writer
func PrintTOML(w io.Writer, v any) error {
	return toml.NewEncoder(w).Encode(v)
}
