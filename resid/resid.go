// Package resid holds the numeric resource identifiers shared with the
// Windows presentation layer (icons, menus and string table entries).
//
// The values must match the resource script compiled into the IME DLL.
package resid

// ID is a Win32 resource identifier.
type ID uint16

// Resource types missing from winuser.h.
const RTManifest ID = 24

const (
	IDMManifest               ID = 1
	IDSTextServiceDisplayName ID = 101
	IDIMainIcon               ID = 102
	IDIModeAlpha              ID = 103
	IDIModeAlphaW             ID = 104
	IDIModeContinuous         ID = 105
	IDIModeContinuousW        ID = 106
	IDIModePro                ID = 107
	IDIModeProW               ID = 108
	IDIModeBasic              ID = 109
	IDIModeBasicW             ID = 110
	IDISettings               ID = 111
	IDISettingsW              ID = 112
	IDRPopupMenu              ID = 113
	IDSContinuousMode         ID = 2000
	IDSBasicMode              ID = 2001
	IDSManualMode             ID = 2002
	IDSDirectMode             ID = 2003
	IDSOpenSettings           ID = 2004
)

var byName = map[string]ID{
	"RT_MANIFEST":                   RTManifest,
	"IDM_MANIFEST":                  IDMManifest,
	"IDS_TEXT_SERVICE_DISPLAY_NAME": IDSTextServiceDisplayName,
	"IDI_MAINICON":                  IDIMainIcon,
	"IDI_MODE_ALPHA":                IDIModeAlpha,
	"IDI_MODE_ALPHA_W":              IDIModeAlphaW,
	"IDI_MODE_CONTINUOUS":           IDIModeContinuous,
	"IDI_MODE_CONTINUOUS_W":         IDIModeContinuousW,
	"IDI_MODE_PRO":                  IDIModePro,
	"IDI_MODE_PRO_W":                IDIModeProW,
	"IDI_MODE_BASIC":                IDIModeBasic,
	"IDI_MODE_BASIC_W":              IDIModeBasicW,
	"IDI_SETTINGS":                  IDISettings,
	"IDI_SETTINGS_W":                IDISettingsW,
	"IDR_POPUP_MENU":                IDRPopupMenu,
	"IDS_CONTINUOUS_MODE":           IDSContinuousMode,
	"IDS_BASIC_MODE":                IDSBasicMode,
	"IDS_MANUAL_MODE":               IDSManualMode,
	"IDS_DIRECT_MODE":               IDSDirectMode,
	"IDS_OPEN_SETTINGS":             IDSOpenSettings,
}

// Lookup returns the identifier for a resource.h symbol.
func Lookup(name string) (ID, bool) {
	id, ok := byName[name]
	return id, ok
}

// Name returns the resource.h symbol for id. RT_MANIFEST is a resource type,
// not an item, and is never returned here.
func Name(id ID) (string, bool) {
	for name, v := range byName {
		if v == id && name != "RT_MANIFEST" {
			return name, true
		}
	}
	return "", false
}

// Names returns every known symbol.
func Names() []string {
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	return names
}
