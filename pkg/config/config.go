package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// DotEnvFile is the name of the optional file, next to the config file, whose variables are
// loaded into the environment before the config is rendered. Variables already present in
// the environment win.
const DotEnvFile = ".env"

// FromFile read and parse config from given path and apply environment on it.
// The file is a text/template rendered with the environment, then expanded with os.ExpandEnv,
// so both `{{ .DATABASE_HOST }}` and `${DATABASE_HOST}` forms are accepted.
func FromFile(filePath string, cfg interface{}) error {
	if err := loadDotEnv(filepath.Join(filepath.Dir(filePath), DotEnvFile)); err != nil {
		return err
	}

	t, err := template.New(filepath.Base(filePath)).Option("missingkey=zero").ParseFiles(filePath)
	if err != nil {
		return err
	}
	strWriter := &strings.Builder{}
	if err := t.Execute(strWriter, environ()); err != nil {
		return err
	}

	content := os.ExpandEnv(strWriter.String())
	return yaml.Unmarshal([]byte(content), cfg)
}

func environ() map[string]string {
	envMap := make(map[string]string)
	for _, envStr := range os.Environ() {
		pair := strings.SplitN(envStr, "=", 2)
		if len(pair) == 2 {
			envMap[pair[0]] = pair[1]
		}
	}
	return envMap
}

func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
