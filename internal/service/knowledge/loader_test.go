package knowledge

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"elevatehub/internal/domain/models"
	"elevatehub/internal/service/knowledge/converter"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestLoadDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "claims.md"), "---\ntitle: Claims Handling\ncategory: insurance_domain\ntags: [claims]\n---\nFNOL starts a claim.\n")
	writeFile(t, filepath.Join(dir, "guides", "vpn-setup.txt"), "Request VPN access on day one.")
	writeFile(t, filepath.Join(dir, "guides", "docker.html"), "<h2>Docker</h2><p>Install Docker Desktop.</p>")
	writeFile(t, filepath.Join(dir, "odd.md"), "---\ncategory: astrology\n---\nbody")
	writeFile(t, filepath.Join(dir, "logo.png"), "not text")
	writeFile(t, filepath.Join(dir, "empty.txt"), "   ")

	entries, err := LoadDirectory(context.Background(), dir, converter.NewRegistry(), discardLogger())
	if err != nil {
		t.Fatalf("LoadDirectory failed: %v", err)
	}

	byID := make(map[string]models.KnowledgeEntry)
	for _, e := range entries {
		byID[e.ID] = e
	}
	if len(byID) != 4 {
		t.Fatalf("loaded %d entries, want 4: %v", len(byID), entries)
	}

	claims := byID["claims"]
	if claims.Title != "Claims Handling" || claims.Category != models.CategoryInsuranceDomain || len(claims.Tags) != 1 {
		t.Errorf("claims = %+v", claims)
	}
	if !claims.IsActive || claims.Version != 1 || claims.CreatedAt.IsZero() {
		t.Errorf("claims not initialised: %+v", claims)
	}

	vpn := byID["vpn-setup"]
	if vpn.Title != "vpn-setup" || vpn.Category != models.CategoryTrainingMaterials || vpn.Tags == nil {
		t.Errorf("vpn-setup = %+v", vpn)
	}

	if byID["docker"].Content != "## Docker\n\nInstall Docker Desktop." {
		t.Errorf("docker content = %q", byID["docker"].Content)
	}

	if byID["odd"].Category != models.CategoryTrainingMaterials {
		t.Errorf("unknown category kept: %q", byID["odd"].Category)
	}
}

func TestLoadDirectoryConversionError(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "broken.md"), "---\ntitle: never closed\n")

	if _, err := LoadDirectory(context.Background(), dir, converter.NewRegistry(), discardLogger()); err == nil {
		t.Error("expected error for broken frontmatter")
	}
}

func TestLoadDirectoryMissing(t *testing.T) {
	if _, err := LoadDirectory(context.Background(), filepath.Join(t.TempDir(), "nope"), converter.NewRegistry(), discardLogger()); err == nil {
		t.Error("expected error for missing directory")
	}
}
