// Package config loads and validates maze configuration files.
//
// Two file formats are accepted:
//   - KEY=VALUE text files (the default, "#" starts a comment line)
//   - YAML mappings when the file name ends in .yaml or .yml
//
// Keys:
//
//	WIDTH, HEIGHT   required, integers >= 10
//	ENTRY, EXIT     required, "x,y" inside the grid, distinct
//	OUTPUT_FILE     required, must start with a letter
//	PERFECT         required, true or false
//	SEED            optional integer; absent means a time based seed
//	ANIMATE         optional boolean, default true
//	ALGORITHM       optional, dfs (default) or prim
//	OVERLAY         optional boolean, default true
//
// Usage:
//
//	cfg, err := config.Load("config.txt")
//	if err != nil {
//		fmt.Println("Error:", err)
//		os.Exit(1)
//	}
//
// Named presets live in a directory and are cached by a Manager:
//
//	manager, err := config.NewManager("configs")
//	cfg, err := manager.Load("default")
package config
