package config

import (
	"errors"
	"fmt"
)

var validLogLevels = map[string]bool{
	"trace": true, "debug": true, "info": true,
	"warn": true, "error": true,
}

func (c *Config) Validate() error {
	if c.LLM.Model == "" {
		return errors.New("llm.model is required")
	}
	if c.Pipeline.RawPath == "" {
		return errors.New("pipeline.raw_path is required")
	}
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("logging.level '%s' is not one of trace, debug, info, warn, error", c.Logging.Level)
	}
	return nil
}
