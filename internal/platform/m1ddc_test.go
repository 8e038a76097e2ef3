package platform

import (
	"errors"
	"os/exec"
	"reflect"
	"strings"
	"testing"
)

const detailedOutput = `[1] XG27ACS (37D8832A-2D66-02CA-B9F7-8F30A301B230)
 - Product name:  XG27ACS
 - Manufacturer:  AUS
 - System UUID:   37D8832A-2D66-02CA-B9F7-8F30A301B230
[2] (Built-in) Display
 - Product name:  Built-in Display
`

func TestParseM1DDCList(t *testing.T) {
	got := parseM1DDCList(detailedOutput)
	want := []DisplayInfo{
		{Index: 1, ProductName: "XG27ACS", SystemUUID: "37D8832A-2D66-02CA-B9F7-8F30A301B230"},
		{Index: 2, ProductName: "(Built-in) Display"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("parseM1DDCList() = %+v, want %+v", got, want)
	}
}

func TestSplitHeader(t *testing.T) {
	tests := []struct {
		header   string
		wantName string
		wantID   string
	}{
		{"LG HDR 4K (0A1B2C3D-0000-1111-2222-333344445555)", "LG HDR 4K", "0A1B2C3D-0000-1111-2222-333344445555"},
		{"LG HDR 4K (rev 2)", "LG HDR 4K (rev 2)", ""},
		{"Plain", "Plain", ""},
		{"", "", ""},
	}
	for _, tt := range tests {
		name, id := splitHeader(tt.header)
		if name != tt.wantName || id != tt.wantID {
			t.Errorf("splitHeader(%q) = (%q, %q), want (%q, %q)", tt.header, name, id, tt.wantName, tt.wantID)
		}
	}
}

type fakeRun struct {
	calls  [][]string
	stdout string
	stderr string
	err    error
}

func (f *fakeRun) run(name string, args ...string) ([]byte, []byte, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	return []byte(f.stdout), []byte(f.stderr), f.err
}

func newTestM1DDC(f *fakeRun, present bool) *M1DDCBackend {
	return &M1DDCBackend{
		run: f.run,
		lookPath: func(string) (string, error) {
			if !present {
				return "", exec.ErrNotFound
			}
			return "/opt/homebrew/bin/m1ddc", nil
		},
	}
}

func TestM1DDCSetInput(t *testing.T) {
	f := &fakeRun{}
	b := newTestM1DDC(f, true)

	if err := b.SetInput("uuid:37D8832A-2D66-02CA-B9F7-8F30A301B230", 26); err != nil {
		t.Fatalf("SetInput() error: %v", err)
	}
	want := []string{"m1ddc", "display", "uuid:37D8832A-2D66-02CA-B9F7-8F30A301B230", "set", "input", "26"}
	if len(f.calls) != 1 || !reflect.DeepEqual(f.calls[0], want) {
		t.Errorf("calls = %v, want [%v]", f.calls, want)
	}
}

func TestM1DDCHelperFailure(t *testing.T) {
	f := &fakeRun{stderr: "Display not found", err: errors.New("exit status 1")}
	b := newTestM1DDC(f, true)

	err := b.SetInput("7", 15)
	var be *BackendError
	if !errors.As(err, &be) {
		t.Fatalf("SetInput() error = %v, want *BackendError", err)
	}
	if !strings.Contains(err.Error(), "Display not found") {
		t.Errorf("error %q should include stderr", err)
	}
}

func TestM1DDCMissing(t *testing.T) {
	b := newTestM1DDC(&fakeRun{}, false)

	if _, err := b.ListDisplays(); !errors.Is(err, errM1DDCMissing) {
		t.Errorf("ListDisplays() error = %v, want missing dependency", err)
	}
	report := b.Doctor()
	if report.OK || !strings.Contains(report.Message, "brew install m1ddc") {
		t.Errorf("Doctor() = %+v, want install hint", report)
	}
}

func TestM1DDCListDisplays(t *testing.T) {
	b := newTestM1DDC(&fakeRun{stdout: detailedOutput}, true)
	list, err := b.ListDisplays()
	if err != nil {
		t.Fatalf("ListDisplays() error: %v", err)
	}
	if len(list.Displays) != 2 || list.Raw != detailedOutput {
		t.Errorf("ListDisplays() = %+v", list)
	}

	empty := newTestM1DDC(&fakeRun{stdout: "nothing here\n"}, true)
	if _, err := empty.ListDisplays(); err == nil {
		t.Error("ListDisplays() with unparsable output should fail")
	}
}

func TestM1DDCGetInputUnsupported(t *testing.T) {
	b := newTestM1DDC(&fakeRun{}, true)
	if _, err := b.GetInput("1"); !errors.Is(err, ErrUnsupported) {
		t.Errorf("GetInput() error = %v, want ErrUnsupported", err)
	}
}

func TestM1DDCDoctor(t *testing.T) {
	ok := newTestM1DDC(&fakeRun{stdout: "[1] XG27ACS (37D8832A-2D66-02CA-B9F7-8F30A301B230)\n"}, true).Doctor()
	if !ok.OK || !strings.Contains(ok.Message, "m1ddc: OK") {
		t.Errorf("Doctor() = %+v, want OK", ok)
	}

	none := newTestM1DDC(&fakeRun{stdout: "  \n"}, true).Doctor()
	if none.OK {
		t.Errorf("Doctor() with no displays = %+v, want not OK", none)
	}
}
