package config_test

import (
	"testing"

	"github.com/chartchai-class/project-01-anti-fakenews-cn-695/config"
)

func TestLoadConfigDefaults(t *testing.T) {
	if err := config.LoadConfig(t.TempDir()); err != nil {
		t.Errorf("wrong result, got error: %v", err)
		return
	}

	// a reset without regeneration keeps the list only from 60 items up
	if config.C.Mock.SeedCount != 60 {
		t.Errorf("wrong result, expected seed count %d, got %d", 60, config.C.Mock.SeedCount)
	}
	if !config.C.Mock.PrimeOnStart {
		t.Errorf("wrong result, expected prime on start by default")
	}
	if config.C.Storage.Driver != "memory" {
		t.Errorf("wrong result, expected driver %q, got %q", "memory", config.C.Storage.Driver)
	}
}

func TestLoadConfigFile(t *testing.T) {
	if err := config.LoadConfig("."); err != nil {
		t.Errorf("wrong result, got error: %v", err)
		return
	}

	if config.C.Mock.SeedCount != 60 || !config.C.Mock.PrimeOnStart {
		t.Errorf("wrong result, unexpected mock config %#v", config.C.Mock)
	}
	if config.C.Redis.Prefix != "antifakenews:" {
		t.Errorf("wrong result, expected prefix %q, got %q", "antifakenews:", config.C.Redis.Prefix)
	}
}
