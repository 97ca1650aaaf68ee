package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/BarCut/internal/model"
)

func TestExportAndImportBackup(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "backup.json")

	cfg := model.DefaultAppConfig()
	cfg.DefaultKerf = 2.5
	cfg.CompanyName = "Maestranza Sur"

	if err := ExportBackup(path, cfg); err != nil {
		t.Fatalf("ExportBackup failed: %v", err)
	}

	backup, err := ImportBackup(path)
	if err != nil {
		t.Fatalf("ImportBackup failed: %v", err)
	}

	if backup.Version != BackupVersion {
		t.Errorf("expected version %s, got %s", BackupVersion, backup.Version)
	}
	if backup.CreatedAt == "" {
		t.Error("expected non-empty CreatedAt")
	}
	if backup.Config.DefaultKerf != 2.5 {
		t.Errorf("expected DefaultKerf=2.5, got %f", backup.Config.DefaultKerf)
	}
	if backup.Config.CompanyName != "Maestranza Sur" {
		t.Errorf("expected CompanyName=Maestranza Sur, got %s", backup.Config.CompanyName)
	}
}

func TestImportBackupMissingFile(t *testing.T) {
	_, err := ImportBackup(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestImportBackupInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json}"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := ImportBackup(path); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestImportBackupMissingVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "noversion.json")
	if err := os.WriteFile(path, []byte(`{"config": {"default_kerf": 3}}`), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := ImportBackup(path); err == nil {
		t.Fatal("expected error for missing version")
	}
}

func TestImportBackupNilSlices(t *testing.T) {
	path := filepath.Join(t.TempDir(), "old.json")
	data := `{"version": "1.0.0", "config": {"default_stock_length": 3000, "recent_exports": null}}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	backup, err := ImportBackup(path)
	if err != nil {
		t.Fatalf("ImportBackup failed: %v", err)
	}
	if backup.Config.RecentExports == nil {
		t.Error("RecentExports should not be nil")
	}
	if backup.Config.DefaultStockLength != 3000 {
		t.Errorf("expected DefaultStockLength=3000, got %f", backup.Config.DefaultStockLength)
	}
}
