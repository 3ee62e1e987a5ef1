package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/netgrowth/internal/config"
)

func TestLoadSeriesMissingFile(t *testing.T) {
	c := config.DefaultConfig()
	c.DataPath = filepath.Join(t.TempDir(), "missing.csv")

	_, err := loadSeries(c)
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected os.ErrNotExist, got %v", err)
	}
	if !strings.Contains(err.Error(), "--data") {
		t.Errorf("error should name the --data flag: %v", err)
	}
}

func TestLoadSeries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.csv")
	data := "Entity,Code,Year,Number of Internet users\nWorld,OWID_WRL,1990,2600000\nWorld,OWID_WRL,1991,4400000\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	c := config.DefaultConfig()
	c.DataPath = path

	s, err := loadSeries(c)
	if err != nil {
		t.Fatalf("loadSeries: %v", err)
	}
	if s.Len() != 2 || s.Initial() != 2.6e6 {
		t.Errorf("unexpected series %+v", s)
	}
}

func TestRunInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "netgrowth.yaml")
	force = false

	if err := runInit(nil, []string{path}); err != nil {
		t.Fatalf("runInit: %v", err)
	}
	loaded, err := config.Load(path)
	if err != nil {
		t.Fatalf("written config does not load: %v", err)
	}
	if loaded.Theme != config.DefaultTheme || loaded.Model.KFactor != config.DefaultKFactor {
		t.Errorf("unexpected config %+v", loaded)
	}

	if err := runInit(nil, []string{path}); err == nil {
		t.Error("expected refusal to overwrite")
	}

	force = true
	defer func() { force = false }()
	if err := runInit(nil, []string{path}); err != nil {
		t.Errorf("forced overwrite failed: %v", err)
	}
}
