package scaffold

import (
	"path/filepath"

	"github.com/criticalmanufacturing/cli/pkg/conf"
)

// SecurityPortal generates the Security Portal customization layer.
type SecurityPortal struct{}

var _ ArgsGenerator = SecurityPortal{}

// GenerateArgs hands the user's arguments to the template unchanged.
func (SecurityPortal) GenerateArgs(projectRoot, workingDir string, args []string) ([]string, error) {
	if args == nil {
		return []string{}, nil
	}
	return args, nil
}

func NewSecurityPortalCommand() LayerTemplateCommand {
	return LayerTemplateCommand{
		Template: "securityPortal",
		Args:     SecurityPortal{},
		Defaults: securityPortalDefaults,
	}
}

func securityPortalDefaults(projectRoot, workingDir string) map[string]interface{} {
	data := map[string]interface{}{
		"packageId": "Cmf.Custom.SecurityPortal",
		"version":   "1.0.0",
		"tenant":    "",
	}
	if projectRoot == "" {
		return data
	}
	cfg, err := conf.ReadProjectConfig(filepath.Join(projectRoot, conf.ProjectConfigFileName))
	if err != nil {
		return data
	}
	if cfg.ProjectName != "" {
		data["packageId"] = "Cmf.Custom." + cfg.ProjectName + ".SecurityPortal"
	}
	data["tenant"] = cfg.Tenant
	return data
}
