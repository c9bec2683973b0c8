// Package generate resolves generation profiles into concrete policies and
// runs the generator.
//
// Profiles come from the user's config file; the CLI layers flag overrides on
// top of the resolved policy before generating.
package generate
