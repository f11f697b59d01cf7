package catalog

import (
	"reflect"
	"testing"
)

func TestLookup_KnownOperations(t *testing.T) {
	tests := []struct {
		name      string
		tokens    []string
		target    TargetKind
		assumeYes bool
	}{
		{"install", []string{"install"}, TargetArtifact, true},
		{"purge", []string{"purge"}, TargetPackage, true},
		{"update", []string{"update"}, TargetNone, false},
		{"upgrade", []string{"upgrade"}, TargetNone, true},
		{"autoremove", []string{"autoremove"}, TargetNone, true},
		{"fix-broken", []string{"install", "--fix-broken"}, TargetNone, true},
		{"clean", []string{"clean"}, TargetNone, false},
	}
	for _, tt := range tests {
		op, ok := Lookup(tt.name)
		if !ok {
			t.Fatalf("Lookup(%q) not found", tt.name)
		}
		if !reflect.DeepEqual(op.Tokens, tt.tokens) {
			t.Errorf("Lookup(%q).Tokens = %v, want %v", tt.name, op.Tokens, tt.tokens)
		}
		if op.Target != tt.target {
			t.Errorf("Lookup(%q).Target = %v, want %v", tt.name, op.Target, tt.target)
		}
		if op.AssumeYes != tt.assumeYes {
			t.Errorf("Lookup(%q).AssumeYes = %v, want %v", tt.name, op.AssumeYes, tt.assumeYes)
		}
	}
}

func TestLookup_Unknown(t *testing.T) {
	for _, name := range []string{"", "remove", "dist-upgrade", "INSTALL", "install "} {
		if _, ok := Lookup(name); ok {
			t.Errorf("Lookup(%q) found, want not found", name)
		}
	}
}

func TestArity(t *testing.T) {
	install, _ := Lookup("install")
	if got := install.Arity(); got != 1 {
		t.Errorf("install.Arity() = %d, want 1", got)
	}
	update, _ := Lookup("update")
	if got := update.Arity(); got != 0 {
		t.Errorf("update.Arity() = %d, want 0", got)
	}
}

func TestAllowsModifier(t *testing.T) {
	install, _ := Lookup("install")
	if !install.AllowsModifier(FlagReinstall) {
		t.Errorf("install.AllowsModifier(%q) = false, want true", FlagReinstall)
	}
	if install.AllowsModifier("--force-yes") {
		t.Error("install.AllowsModifier(--force-yes) = true, want false")
	}
	update, _ := Lookup("update")
	if update.AllowsModifier(FlagReinstall) {
		t.Errorf("update.AllowsModifier(%q) = true, want false", FlagReinstall)
	}
}

func TestMaintenanceNames(t *testing.T) {
	want := []string{"update", "upgrade", "autoremove", "fix-broken", "clean"}
	if got := MaintenanceNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("MaintenanceNames() = %v, want %v", got, want)
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	all := All()
	if len(all) != 7 {
		t.Fatalf("All() returned %d entries, want 7", len(all))
	}
	all[0].Name = "mutated"
	if op, _ := Lookup("install"); op.Name != "install" {
		t.Error("mutating All() result changed the catalog")
	}
}
