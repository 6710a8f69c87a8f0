package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix starts every environment variable the stake ledger reads.
const EnvPrefix = "STAKE_LEDGER_"

// ParseEnv loads configuration from STAKE_LEDGER_* environment variables.
// An env tag without EnvPrefix is a programming error and is reported before
// anything is read.
func ParseEnv(target any) error {
	if err := checkEnvKeys(reflect.TypeOf(target)); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func checkEnvKeys(t reflect.Type) error {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag, ok := field.Tag.Lookup("env")
		if !ok {
			if field.Type.Kind() == reflect.Struct && field.IsExported() {
				if err := checkEnvKeys(field.Type); err != nil {
					return err
				}
			}
			continue
		}
		key, _, _ := strings.Cut(tag, ",")
		if key != "" && !strings.HasPrefix(key, EnvPrefix) {
			return fmt.Errorf("%s.%s reads %s outside %s*", t.Name(), field.Name, key, EnvPrefix)
		}
	}
	return nil
}
