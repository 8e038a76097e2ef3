package traymodel

// MenuItemKind distinguishes menu entries.
type MenuItemKind int

const (
	MenuHeader MenuItemKind = iota
	MenuSeparator
	MenuAction
)

// MenuItem is one entry of a MenuSpec. ID, Checked and Enabled only apply to
// MenuAction; Title applies to headers and actions.
type MenuItem struct {
	Kind    MenuItemKind
	ID      uint16
	Title   string
	Checked bool
	Enabled bool
}

// MenuSpec is a declarative snapshot of the tray menu.
type MenuSpec struct {
	Items []MenuItem
}

func header(title string) MenuItem {
	return MenuItem{Kind: MenuHeader, Title: title}
}

func separator() MenuItem {
	return MenuItem{Kind: MenuSeparator}
}

func action(id uint16, title string, checked bool) MenuItem {
	return MenuItem{Kind: MenuAction, ID: id, Title: title, Checked: checked, Enabled: true}
}

// PrettyInputLabel returns a friendly name for common preset keys.
func PrettyInputLabel(name string) string {
	switch name {
	case "dp1":
		return "DisplayPort 1"
	case "dp2":
		return "DisplayPort 2"
	case "usb_c", "usbc":
		return "USB-C"
	case "hdmi1":
		return "HDMI 1"
	case "hdmi2":
		return "HDMI 2"
	default:
		return name
	}
}
