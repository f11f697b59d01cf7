package broker

import (
	"errors"
	"reflect"
	"testing"

	"github.com/nanoware/pkgbroker/internal/argv"
	"github.com/nanoware/pkgbroker/internal/catalog"
	"github.com/nanoware/pkgbroker/internal/privexec"
)

// recordingExecutor captures every vector it is asked to run and returns a
// canned outcome. If Execute is reached on a rejection path, the test sees
// it in calls.
type recordingExecutor struct {
	calls   [][]string
	outcome privexec.Outcome
	err     error
}

func (r *recordingExecutor) Execute(vector []string) (privexec.Outcome, error) {
	r.calls = append(r.calls, vector)
	return r.outcome, r.err
}

func asRoot() error  { return nil }
func notRoot() error { return errors.New("euid 1000") }

func newTestBroker(rec *recordingExecutor) *Broker {
	return New(rec, WithPrivilegeCheck(asRoot))
}

func TestRun_InstallHappyPath(t *testing.T) {
	rec := &recordingExecutor{}
	b := newTestBroker(rec)

	code, err := b.Run("install", []string{"/opt/pkgs/app.deb"}, []string{catalog.FlagReinstall})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if code != 0 {
		t.Errorf("Run() code = %d, want 0", code)
	}
	want := [][]string{{argv.AptPath, "install", "-y", catalog.FlagReinstall, "/opt/pkgs/app.deb"}}
	if !reflect.DeepEqual(rec.calls, want) {
		t.Errorf("executed vectors = %v, want %v", rec.calls, want)
	}
}

func TestRun_PrivilegeDeniedBeforeEverything(t *testing.T) {
	rec := &recordingExecutor{}
	b := New(rec, WithPrivilegeCheck(notRoot))

	// Even a perfectly valid request is rejected without privilege, and an
	// unknown operation reports the privilege failure, not the lookup one.
	for _, name := range []string{"install", "update", "no-such-op"} {
		code, err := b.Run(name, nil, nil)
		if !errors.Is(err, ErrPrivilege) {
			t.Errorf("Run(%s) error = %v, want ErrPrivilege", name, err)
		}
		if code != privexec.FailureCode {
			t.Errorf("Run(%s) code = %d, want %d", name, code, privexec.FailureCode)
		}
	}
	if len(rec.calls) != 0 {
		t.Fatalf("executor invoked %d times on privilege rejection", len(rec.calls))
	}
}

func TestRun_UnknownOperation(t *testing.T) {
	rec := &recordingExecutor{}
	b := newTestBroker(rec)

	code, err := b.Run("dist-upgrade", nil, nil)
	if !errors.Is(err, ErrUnknownOperation) {
		t.Fatalf("Run() error = %v, want ErrUnknownOperation", err)
	}
	if code != privexec.FailureCode {
		t.Errorf("Run() code = %d, want %d", code, privexec.FailureCode)
	}
	if len(rec.calls) != 0 {
		t.Fatal("executor invoked for unknown operation")
	}
}

func TestRun_ArityMismatch(t *testing.T) {
	rec := &recordingExecutor{}
	b := newTestBroker(rec)

	tests := []struct {
		name string
		args []string
	}{
		{"install", nil},                         // missing target
		{"purge", []string{"pkg", "extra"}},      // extra positional
		{"update", []string{"trailing"}},         // maintenance op with arg
		{"clean", []string{"a", "b"}},
	}
	for _, tt := range tests {
		code, err := b.Run(tt.name, tt.args, nil)
		if !errors.Is(err, ErrArgumentCount) {
			t.Errorf("Run(%s, %v) error = %v, want ErrArgumentCount", tt.name, tt.args, err)
		}
		if code != privexec.FailureCode {
			t.Errorf("Run(%s, %v) code = %d, want %d", tt.name, tt.args, code, privexec.FailureCode)
		}
	}
	if len(rec.calls) != 0 {
		t.Fatal("executor invoked on arity rejection")
	}
}

func TestRun_UnsafeTargets(t *testing.T) {
	rec := &recordingExecutor{}
	b := newTestBroker(rec)

	code, err := b.Run("purge", []string{"evil;rm -rf /"}, nil)
	if !errors.Is(err, ErrPackageName) {
		t.Fatalf("Run(purge) error = %v, want ErrPackageName", err)
	}
	if code != privexec.FailureCode {
		t.Errorf("Run(purge) code = %d, want %d", code, privexec.FailureCode)
	}

	if _, err := b.Run("install", []string{"/tmp/../etc/app.deb"}, nil); !errors.Is(err, ErrArtifactPath) {
		t.Fatalf("Run(install) error = %v, want ErrArtifactPath", err)
	}
	if _, err := b.Run("install", []string{"app.deb"}, nil); !errors.Is(err, ErrArtifactPath) {
		t.Fatalf("Run(install) error = %v, want ErrArtifactPath", err)
	}

	if len(rec.calls) != 0 {
		t.Fatal("executor invoked on validation rejection")
	}
}

func TestRun_ChildNonZeroExitPassedThrough(t *testing.T) {
	rec := &recordingExecutor{outcome: privexec.Outcome{Code: 100}}
	b := newTestBroker(rec)

	code, err := b.Run("update", nil, nil)
	if err != nil {
		t.Fatalf("Run() error = %v, want nil for normal child failure", err)
	}
	if code != 100 {
		t.Errorf("Run() code = %d, want 100", code)
	}
}

func TestRun_AbnormalChildTermination(t *testing.T) {
	rec := &recordingExecutor{outcome: privexec.Outcome{Code: privexec.FailureCode, Abnormal: true}}
	b := newTestBroker(rec)

	code, err := b.Run("update", nil, nil)
	if err == nil {
		t.Fatal("Run() error = nil, want abnormal-termination error")
	}
	if code != privexec.FailureCode {
		t.Errorf("Run() code = %d, want %d", code, privexec.FailureCode)
	}
}

func TestRun_SpawnFailure(t *testing.T) {
	rec := &recordingExecutor{err: errors.New("spawn /usr/bin/apt: no such file")}
	b := newTestBroker(rec)

	code, err := b.Run("clean", nil, nil)
	if err == nil {
		t.Fatal("Run() error = nil, want spawn failure")
	}
	if code != privexec.FailureCode {
		t.Errorf("Run() code = %d, want %d", code, privexec.FailureCode)
	}
}

func TestPrepare_NoSideEffects(t *testing.T) {
	rec := &recordingExecutor{}
	b := newTestBroker(rec)

	vector, err := b.Prepare("purge", []string{"my-package"}, nil)
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	want := []string{argv.AptPath, "purge", "-y", "my-package"}
	if !reflect.DeepEqual(vector, want) {
		t.Errorf("Prepare() = %v, want %v", vector, want)
	}
	if len(rec.calls) != 0 {
		t.Fatal("Prepare() reached the executor")
	}
}
