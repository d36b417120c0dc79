/*
Package params provides the launch parameter sources read by the projector.

Every source produces a *Params, a multi-valued map whose Lookup reports the
first value and whether the key is present at all:

	p, err := params.ParseScript(os.Stdin)   // "key value" lines up to "launch"
	p, err := params.LoadDotenv(".launch.env")
	p, err := params.LoadYAML("instance.yaml")
	p, err := params.LoadProperties("instance.properties")
	p, err := params.FromEnv(env.Options{}) // ALLAUNCHER_WINDOW_TITLE, ...

	all := params.Merge(fromFile, fromEnv) // later sources win
*/
package params
