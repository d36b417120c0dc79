/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

// Recognized launch parameter names.
const (
	ParamLauncherBrand    = "launcherBrand"
	ParamLauncherVersion  = "launcherVersion"
	ParamInstanceName     = "instanceName"
	ParamInstanceIconKey  = "instanceIconKey"
	ParamInstanceIconPath = "instanceIconPath"
	ParamWindowTitle      = "windowTitle"
	ParamWindowParams     = "windowParams"
)

// Destination property keys.
const (
	KeyLauncherBrand    = "minecraft.launcher.brand"
	KeyLauncherVersion  = "minecraft.launcher.version"
	KeyInstanceName     = "org.allauncher.instance.name"
	KeyInstanceIconID   = "org.allauncher.instance.icon.id"
	KeyInstanceIconPath = "org.allauncher.instance.icon.path"
	KeyWindowTitle      = "org.allauncher.window.title"
	KeyWindowDimensions = "org.allauncher.window.dimensions"

	// MultiMC-era names still read by older mods.
	LegacyKeyInstanceTitle = "multimc.instance.title"
	LegacyKeyInstanceIcon  = "multimc.instance.icon"
)

// Mapping binds one launch parameter to the property keys it is written to.
type Mapping struct {
	Param     string
	Key       string
	LegacyKey string // empty when the parameter has no legacy alias
}

// Keys returns the destination keys, primary first.
func (m Mapping) Keys() []string {
	if m.LegacyKey == "" {
		return []string{m.Key}
	}
	return []string{m.Key, m.LegacyKey}
}

// Table is an ordered list of mappings.
type Table []Mapping

var launcherTable = Table{
	{Param: ParamLauncherBrand, Key: KeyLauncherBrand},
	{Param: ParamLauncherVersion, Key: KeyLauncherVersion},
	{Param: ParamInstanceName, Key: KeyInstanceName, LegacyKey: LegacyKeyInstanceTitle},
	{Param: ParamInstanceIconKey, Key: KeyInstanceIconID, LegacyKey: LegacyKeyInstanceIcon},
	{Param: ParamInstanceIconPath, Key: KeyInstanceIconPath},
	{Param: ParamWindowTitle, Key: KeyWindowTitle},
	{Param: ParamWindowParams, Key: KeyWindowDimensions},
}

// Launcher returns a copy of the built-in launcher table.
func Launcher() Table {
	return launcherTable.Clone()
}

// Clone returns a copy that callers may modify freely.
func (t Table) Clone() Table {
	out := make(Table, len(t))
	copy(out, t)
	return out
}

// Params lists the source parameter names in table order.
func (t Table) Params() []string {
	out := make([]string, 0, len(t))
	for _, m := range t {
		out = append(out, m.Param)
	}
	return out
}

// Destinations lists every destination key in table order.
func (t Table) Destinations() []string {
	var out []string
	for _, m := range t {
		out = append(out, m.Keys()...)
	}
	return out
}

// Lookup finds the mapping for a parameter.
func (t Table) Lookup(param string) (Mapping, bool) {
	for _, m := range t {
		if m.Param == param {
			return m, true
		}
	}
	return Mapping{}, false
}
