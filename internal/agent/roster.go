package agent

import (
	"fmt"

	"github.com/jukeyman/jams-api/pkg/models"
)

// departments are the production pipeline stages the roster covers, in
// pipeline order.
var departments = []string{
	"Composition", "Sound Design", "Recording", "Editing", "Mixing",
	"Mastering", "Post-Production", "Quality Control", "Metadata", "Distribution", "Orchestration",
}

const agentsPerDepartment = 10

// Roster returns the static 110-agent production roster: ten agents per
// department, all idle. Ids are stable across calls.
func Roster() []models.Agent {
	agents := make([]models.Agent, 0, len(departments)*agentsPerDepartment)
	for deptIndex, dept := range departments {
		for i := 1; i <= agentsPerDepartment; i++ {
			agents = append(agents, models.Agent{
				ID:           fmt.Sprintf("agent-%d-%d", deptIndex+1, i),
				Name:         fmt.Sprintf("%s Agent %d", dept, i),
				Department:   dept,
				Status:       "idle",
				Capabilities: []string{fmt.Sprintf("%s task %d", dept, i)},
			})
		}
	}
	return agents
}

// Lookup returns a minimal descriptor for an agent id. Unknown ids still
// resolve to a generic production agent, mirroring the roster's static
// nature.
func Lookup(id string) models.Agent {
	return models.Agent{
		ID:         id,
		Name:       "Agent " + id,
		Status:     "idle",
		Department: "Production",
	}
}
