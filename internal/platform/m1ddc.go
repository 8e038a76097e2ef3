package platform

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

const m1ddcBinary = "m1ddc"

// errM1DDCMissing is reported when m1ddc is not on PATH.
var errM1DDCMissing = errors.New("missing dependency: `m1ddc`.\nInstall: `brew install m1ddc`")

// runFunc executes a helper process and returns its captured output.
type runFunc func(name string, args ...string) (stdout, stderr []byte, err error)

// M1DDCBackend drives displays through the m1ddc helper on Apple Silicon Macs.
type M1DDCBackend struct {
	run      runFunc
	lookPath func(string) (string, error)
}

var _ Backend = (*M1DDCBackend)(nil)

// NewM1DDCBackend creates a backend that shells out to m1ddc.
func NewM1DDCBackend() *M1DDCBackend {
	return &M1DDCBackend{run: execRun, lookPath: exec.LookPath}
}

func execRun(name string, args ...string) ([]byte, []byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.Command(name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}

func (b *M1DDCBackend) ensurePresent() error {
	if _, err := b.lookPath(m1ddcBinary); err != nil {
		return errM1DDCMissing
	}
	return nil
}

func (b *M1DDCBackend) runM1DDC(args ...string) (string, error) {
	if err := b.ensurePresent(); err != nil {
		return "", err
	}
	context := "running m1ddc " + strings.Join(args, " ")
	stdout, stderr, err := b.run(m1ddcBinary, args...)
	if err != nil {
		return "", backendErr(context, fmt.Errorf("%w\nstdout:\n%s\nstderr:\n%s",
			err, strings.TrimSpace(string(stdout)), strings.TrimSpace(string(stderr))))
	}
	return string(stdout), nil
}

// ListDisplays runs `m1ddc display list detailed` and parses its output.
func (b *M1DDCBackend) ListDisplays() (*DisplayList, error) {
	raw, err := b.runM1DDC("display", "list", "detailed")
	if err != nil {
		return nil, err
	}
	displays := parseM1DDCList(raw)
	if len(displays) == 0 {
		return nil, backendErr("parsing m1ddc output", fmt.Errorf("no displays found. Raw output:\n%s", strings.TrimSpace(raw)))
	}
	return &DisplayList{Displays: displays, Raw: raw}, nil
}

// SetInput passes the selector through to `m1ddc display <selector> set input <n>`.
func (b *M1DDCBackend) SetInput(selector string, value uint16) error {
	_, err := b.runM1DDC("display", selector, "set", "input", strconv.FormatUint(uint64(value), 10))
	return err
}

// GetInput is not available: m1ddc does not reliably expose raw VCP 0x60 reads.
func (b *M1DDCBackend) GetInput(selector string) (uint16, error) {
	return 0, fmt.Errorf("get-input on the m1ddc backend: %w", ErrUnsupported)
}

// Doctor checks that m1ddc is installed and can see at least one display.
func (b *M1DDCBackend) Doctor() DoctorReport {
	if err := b.ensurePresent(); err != nil {
		return DoctorReport{OK: false, Message: err.Error()}
	}

	out, err := b.runM1DDC("display", "list")
	if err != nil {
		return DoctorReport{OK: false, Message: fmt.Sprintf("m1ddc failed to list displays: %v", err)}
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return DoctorReport{OK: false, Message: "m1ddc ran but returned no displays."}
	}

	return DoctorReport{
		OK: true,
		Message: strings.Join([]string{
			"m1ddc: OK",
			"Detected displays:\n" + out,
			"Note: m1ddc can set input, but does not expose reading raw VCP 0x60 on all monitors.",
		}, "\n\n"),
	}
}

// parseM1DDCList parses `m1ddc display list [detailed]` output:
//
//	[1] XG27ACS (37D8832A-2D66-02CA-B9F7-8F30A301B230)
//	 - Product name:  XG27ACS
//	 - System UUID:   37D8832A-2D66-02CA-B9F7-8F30A301B230
func parseM1DDCList(raw string) []DisplayInfo {
	var displays []DisplayInfo
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimRight(line, "\r ")

		if rest, ok := strings.CutPrefix(line, "["); ok {
			idxStr, header, ok := strings.Cut(rest, "]")
			if !ok {
				continue
			}
			idx, _ := strconv.ParseUint(strings.TrimSpace(idxStr), 10, 32)
			d := DisplayInfo{Index: uint32(idx)}
			d.ProductName, d.SystemUUID = splitHeader(strings.TrimSpace(header))
			displays = append(displays, d)
			continue
		}

		if len(displays) == 0 {
			continue
		}
		cur := &displays[len(displays)-1]
		key, value, ok := strings.Cut(strings.TrimPrefix(strings.TrimSpace(line), "- "), ":")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		switch strings.ToLower(strings.TrimSpace(key)) {
		case "product name":
			if cur.ProductName == "" {
				cur.ProductName = value
			}
		case "system uuid":
			if cur.SystemUUID == "" && isUUID(value) {
				cur.SystemUUID = value
			}
		}
	}
	return displays
}

// splitHeader splits "Name (UUID)" into its parts. A parenthesised suffix
// that is not a UUID stays part of the name.
func splitHeader(header string) (name, id string) {
	open := strings.LastIndex(header, "(")
	if open < 0 || !strings.HasSuffix(header, ")") {
		return header, ""
	}
	candidate := strings.TrimSpace(header[open+1 : len(header)-1])
	if !isUUID(candidate) {
		return header, ""
	}
	return strings.TrimSpace(header[:open]), candidate
}

func isUUID(s string) bool {
	if s == "" {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}
