/*
Package sysprops publishes launcher and instance details as process-wide
properties for code that runs after startup and cannot be handed them
directly, such as mods looking up the instance name or window title.

Seven optional launch parameters are projected under fixed keys:

	launcherBrand     -> minecraft.launcher.brand
	launcherVersion   -> minecraft.launcher.version
	instanceName      -> org.allauncher.instance.name, multimc.instance.title
	instanceIconKey   -> org.allauncher.instance.icon.id, multimc.instance.icon
	instanceIconPath  -> org.allauncher.instance.icon.path
	windowTitle       -> org.allauncher.window.title
	windowParams      -> org.allauncher.window.dimensions

A parameter that is absent is skipped and its keys are left as they were.

Basic Usage:

	p, err := params.ParseScript(os.Stdin)
	if err != nil {
	    return err
	}
	if err := sysprops.Apply(ctx, p, process.Default()); err != nil {
	    return err
	}

	// later, anywhere in the process
	title, ok := process.GetProperty("org.allauncher.window.title")

To mirror the same writes into several stores, register them in a StoreSet:

	set := sysprops.NewStoreSet()
	set.Register("process", process.Default())
	set.Register("env", env.New())
	err := sysprops.Apply(ctx, p, set)
*/
package sysprops
