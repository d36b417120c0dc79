/*
Package process provides the process-wide property store.

Code that runs after launch startup, and cannot be handed configuration
directly, reads launcher details from here:

	title, ok := process.GetProperty("org.allauncher.window.title")

Writes normally happen once, through sysprops.Apply. A WritePolicy can be
installed on a private Store to reject writes, in which case SetProperty
returns an errors.WriteRejectedError:

	store := process.New(process.WithWritePolicy(
	    process.ReadOnly("minecraft.launcher.brand"),
	))
*/
package process
