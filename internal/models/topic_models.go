package models

type Topic struct {
	Name      string   `yaml:"name" json:"name"`
	Keywords  []string `yaml:"keywords" json:"keywords"`
	Responses []string `yaml:"responses" json:"responses"`
}
