/*
Package registry holds the parameter-to-property mapping tables.

The built-in launcher table is fixed at build time:

	launcherBrand     -> minecraft.launcher.brand
	launcherVersion   -> minecraft.launcher.version
	instanceName      -> org.allauncher.instance.name, multimc.instance.title
	instanceIconKey   -> org.allauncher.instance.icon.id, multimc.instance.icon
	instanceIconPath  -> org.allauncher.instance.icon.path
	windowTitle       -> org.allauncher.window.title
	windowParams      -> org.allauncher.window.dimensions

The multimc.* keys are legacy aliases kept for mods written against the older
naming scheme.

Tables are registered by name during initialization, typically in init()
functions, and are handed out as copies so the registered value never changes:

	registry.RegisterTable("myfork", registry.Table{
	    {Param: "windowTitle", Key: "myfork.window.title"},
	})

	t, err := registry.GetTable("myfork")
*/
package registry
