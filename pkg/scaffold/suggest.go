package scaffold

import (
	"fmt"
	"path/filepath"
)

type SuggestRequest struct {
	// Kind is one of "securityPortal", "driver", "converter" or "task".
	Kind string
	Name string
	Dir  string
}

// NextSteps lists what the user should do after generating Kind.
func NextSteps(req SuggestRequest) []string {
	var steps []string
	switch req.Kind {
	case "securityPortal":
		steps = append(steps,
			fmt.Sprintf("Configure the authentication strategies in %s", filepath.Join(req.Dir, "config", "config.json")),
			"Add the package to the dependencies of your root package",
		)
	case "driver":
		steps = append(steps,
			fmt.Sprintf("Implement the communication with the equipment in %s", filepath.Join(req.Dir, "src", "driverImplementation.ts")),
			fmt.Sprintf("Run `npm install && npm run build` in %s", req.Dir),
		)
	case "converter":
		steps = append(steps,
			fmt.Sprintf("Write the transformation in %s", filepath.Join(req.Dir, "src", "converters", req.Name, req.Name+".converter.ts")),
		)
	case "task":
		steps = append(steps,
			fmt.Sprintf("Write the task logic in %s", filepath.Join(req.Dir, "src", "tasks", req.Name, req.Name+".task.ts")),
			"Replace any <Declare your enum> placeholder with the enum type of the setting",
		)
	}
	return steps
}
