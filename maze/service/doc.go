// Package service provides the session control layer between the terminal
// front end and the maze core.
//
// MazeService owns the maze currently on screen and the display state
// around it:
//   - regeneration with a chosen algorithm, exporting every new maze
//   - the solution path and whether it is shown
//   - the wall color, rotated through Palette
//   - hot swapping the configuration
//
// Usage:
//
//	svc := service.NewMazeService(cfg, service.FileExporters, logger)
//
//	info, err := svc.Regenerate(ctx, engine.Prim)
//	if err != nil {
//		return err
//	}
//
//	sess, _ := svc.Current(ctx)
package service
