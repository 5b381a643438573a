package main

import (
	"fmt"

	"github.com/NeuralTrust/CorsCheck/pkg/version"
)

// VersionCmd prints build information.
type VersionCmd struct{}

func (v *VersionCmd) Execute(_ []string) error {
	info := version.GetInfo()
	fmt.Printf("%s %s (%s, %s, built %s)\n", info.AppName, info.Version, info.GoVersion, info.Platform, info.BuildDate)
	return nil
}
