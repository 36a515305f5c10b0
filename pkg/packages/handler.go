package packages

import (
	"context"
	"strings"

	"github.com/criticalmanufacturing/cli/pkg/build"
	"github.com/criticalmanufacturing/cli/pkg/conf"
	"github.com/criticalmanufacturing/cli/pkg/utils"
	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// RestoreFunc restores the dependencies of the package in packageDir.
type RestoreFunc func(ctx context.Context, packageDir string) error

// HandlerOptions carries what a handler needs from the running CLI.
type HandlerOptions struct {
	Platform conf.Platform
	Restore  RestoreFunc
}

// Handler knows how to build one kind of package.
type Handler interface {
	Package() *CmfPackage
	// BuildSteps returns the build pipeline. Each call returns a new slice.
	BuildSteps() build.Pipeline
}

type handlerFactory func(pkg *CmfPackage, opts HandlerOptions) Handler

var handlers = map[PackageType]handlerFactory{
	PackageTypeHTML: func(pkg *CmfPackage, opts HandlerOptions) Handler {
		return NewHtmlNgCliHandler(pkg, opts)
	},
}

// SupportedTypes lists the package types that can be built.
func SupportedTypes() []PackageType {
	types := maps.Keys(handlers)
	slices.Sort(types)
	return types
}

// NewHandler returns the handler for pkg's packageType. Constructing a handler
// may fill default metadata on pkg.
func NewHandler(pkg *CmfPackage, opts HandlerOptions) (Handler, error) {
	factory, ok := handlers[pkg.PackageType]
	if !ok {
		var names []string
		for _, t := range SupportedTypes() {
			names = append(names, string(t))
		}
		return nil, utils.NewCLIErrorf(utils.ErrorCodeInvalidArgument,
			"package %s has unsupported packageType %q (supported: %s)",
			pkg.PackageID, pkg.PackageType, strings.Join(names, ", "))
	}
	return factory(pkg, opts), nil
}

// HtmlNgCliHandler builds web presentation packages managed with the Angular
// CLI.
type HtmlNgCliHandler struct {
	pkg      *CmfPackage
	pipeline build.Pipeline
}

var _ Handler = &HtmlNgCliHandler{}

const (
	htmlTargetDirectory = "UI/Html"
	htmlTargetLayer     = "ui"
)

// NewHtmlNgCliHandler sets the presentation defaults on pkg and composes its
// pipeline: restore the dependencies, then `ng build` in the package root.
func NewHtmlNgCliHandler(pkg *CmfPackage, opts HandlerOptions) *HtmlNgCliHandler {
	pkg.SetDefaultValues(htmlTargetDirectory, htmlTargetLayer, []Step{
		{Type: StepTypeDeployFiles, ContentPath: "**"},
	})
	pkg.DFPackageType = PackageTypePresentation

	dir := pkg.Directory()
	restore := opts.Restore
	return &HtmlNgCliHandler{
		pkg: pkg,
		pipeline: build.Pipeline{
			build.ExecuteCommand{
				Name: "cmf restore",
				Execute: func(ctx context.Context) error {
					if restore == nil {
						return errors.Errorf("no restore configured for %s", pkg.PackageID)
					}
					return restore(ctx, dir)
				},
			},
			build.NgCommand{
				Name:             "ng build",
				Command:          "build",
				WorkingDirectory: dir,
				Platform:         opts.Platform,
			},
		},
	}
}

func (h *HtmlNgCliHandler) Package() *CmfPackage {
	return h.pkg
}

func (h *HtmlNgCliHandler) BuildSteps() build.Pipeline {
	return h.pipeline.Clone()
}
