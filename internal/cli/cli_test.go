package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/monitorctl/monitorctl/internal/config"
	"github.com/monitorctl/monitorctl/internal/platform"
)

type fakeBackend struct {
	displays []platform.DisplayInfo
	raw      string
	listed   int
	current  uint16
	getErr   error
	report   platform.DoctorReport
	sets     []string
}

func (b *fakeBackend) ListDisplays() (*platform.DisplayList, error) {
	b.listed++
	return &platform.DisplayList{Displays: b.displays, Raw: b.raw}, nil
}

func (b *fakeBackend) SetInput(selector string, value uint16) error {
	b.sets = append(b.sets, fmt.Sprintf("%s=%d", selector, value))
	return nil
}

func (b *fakeBackend) GetInput(string) (uint16, error) {
	return b.current, b.getErr
}

func (b *fakeBackend) Doctor() platform.DoctorReport { return b.report }

// execute runs the root command against backend and a config holding doc.
func execute(t *testing.T, backend *fakeBackend, doc string, args ...string) (string, error) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.json")
	if doc != "" {
		if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
			t.Fatal(err)
		}
	}

	origBackend, origStore := newBackend, configStore
	newBackend = func() (platform.Backend, error) { return backend, nil }
	configStore = func() *config.File { return config.NewFileAt(path) }
	t.Cleanup(func() {
		newBackend, configStore = origBackend, origStore
		listRaw = false
		getInputDisplay, setInputDisplay, presetsDisplay = "", "", ""
	})

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestSetInput(t *testing.T) {
	const withDefault = `{"default_display": "2", "inputs": {"dp1": 15}}`
	const withRules = `{
		"inputs": {"dp1": 15},
		"monitors": [{"match": {"contains": "DELL"}, "display": "uuid:AAA", "inputs": {"usb_c": 27}}]
	}`

	tests := []struct {
		name      string
		doc       string
		displays  []platform.DisplayInfo
		args      []string
		wantSet   string
		wantOut   string
		wantLists int
	}{
		{
			name:    "raw value to default display",
			doc:     withDefault,
			args:    []string{"set-input", "17"},
			wantSet: "2=17",
			wantOut: "17\n",
		},
		{
			name:    "no config uses display 1",
			args:    []string{"set-input", "26"},
			wantSet: "1=26",
			wantOut: "26\n",
		},
		{
			name:    "built-in preset without config",
			args:    []string{"set-input", "usb_c"},
			wantSet: "1=26",
			wantOut: "26\n",
		},
		{
			name:      "preset from matching rule",
			doc:       withRules,
			displays:  []platform.DisplayInfo{{Index: 1, ProductName: "DELL U2720Q"}},
			args:      []string{"set-input", "usb_c"},
			wantSet:   "uuid:AAA=27",
			wantOut:   "27\n",
			wantLists: 1,
		},
		{
			name:    "display flag skips enumeration",
			doc:     withRules,
			args:    []string{"set-input", "--display", "3", "dp1"},
			wantSet: "3=15",
			wantOut: "15\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := &fakeBackend{displays: tt.displays}
			out, err := execute(t, backend, tt.doc, tt.args...)
			if err != nil {
				t.Fatalf("set-input error: %v", err)
			}
			if out != tt.wantOut {
				t.Errorf("output = %q, want %q", out, tt.wantOut)
			}
			if len(backend.sets) != 1 || backend.sets[0] != tt.wantSet {
				t.Errorf("sets = %v, want [%s]", backend.sets, tt.wantSet)
			}
			if backend.listed != tt.wantLists {
				t.Errorf("ListDisplays called %d times, want %d", backend.listed, tt.wantLists)
			}
		})
	}
}

func TestSetInputUnknownPreset(t *testing.T) {
	backend := &fakeBackend{}
	_, err := execute(t, backend, `{"inputs": {"hdmi1": 17, "dp1": 15}}`, "set-input", "hdmi")
	if err == nil {
		t.Fatal("expected an error for an unknown preset")
	}
	if !strings.Contains(err.Error(), "dp1, hdmi1") {
		t.Errorf("error %q does not list the presets", err)
	}
	if len(backend.sets) != 0 {
		t.Errorf("backend was called: %v", backend.sets)
	}
}

func TestSetInputMalformedConfig(t *testing.T) {
	_, err := execute(t, &fakeBackend{}, `{"inputs": `, "set-input", "15")
	var fileErr *config.FileError
	if !errors.As(err, &fileErr) {
		t.Fatalf("error = %v, want a *config.FileError", err)
	}
}

func TestGetInput(t *testing.T) {
	out, err := execute(t, &fakeBackend{current: 15}, "", "get-input")
	if err != nil {
		t.Fatalf("get-input error: %v", err)
	}
	if out != "15\n" {
		t.Errorf("output = %q, want %q", out, "15\n")
	}

	_, err = execute(t, &fakeBackend{getErr: platform.ErrUnsupported}, "", "get-input")
	if !errors.Is(err, platform.ErrUnsupported) {
		t.Errorf("error = %v, want ErrUnsupported", err)
	}
}

func TestList(t *testing.T) {
	backend := &fakeBackend{
		displays: []platform.DisplayInfo{
			{Index: 1, ProductName: "LG HDR 4K", SystemUUID: "1A2B"},
			{Index: 2},
		},
		raw: "raw dump",
	}

	out, err := execute(t, backend, "", "list", "--raw")
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	want := "raw dump\n[1] LG HDR 4K (system_uuid=1A2B)\n[2] <unknown> (system_uuid=<unknown>)\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestDoctor(t *testing.T) {
	out, err := execute(t, &fakeBackend{report: platform.DoctorReport{OK: true, Message: "all good"}}, "", "doctor")
	if err != nil || out != "all good\n" {
		t.Errorf("doctor = (%q, %v), want (\"all good\\n\", nil)", out, err)
	}

	_, err = execute(t, &fakeBackend{report: platform.DoctorReport{Message: "m1ddc not found"}}, "", "doctor")
	if err == nil || err.Error() != "m1ddc not found" {
		t.Errorf("doctor error = %v, want the report message", err)
	}
}

func TestConfigPath(t *testing.T) {
	out, err := execute(t, &fakeBackend{}, "", "config-path")
	if err != nil {
		t.Fatalf("config-path error: %v", err)
	}
	if filepath.Base(strings.TrimSpace(out)) != "config.json" {
		t.Errorf("output = %q", out)
	}
}
