// Package provider defines the icon source abstraction layer.
//
// An icon source supplies two things: per-package integer metadata (the
// launcher's clock keys live here) and a resource loader that turns a
// numeric resource id into a drawable. The clock icon loader depends only
// on the Source interface, so icons can come from a theme pack on disk,
// a test fixture, or any other store:
//
//	type Source interface {
//		Name() string
//		Packages() []string
//		Metadata(pkg string) (Metadata, bool)
//		Drawable(pkg string, resID int) (drawable.Drawable, error)
//	}
//
// Missing metadata keys are resolved by the caller through Metadata.Int with
// a per-key default, mirroring how the host platform reads bundle extras.
package provider
