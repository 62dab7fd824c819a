package testfixtures

import "github.com/planterm/planterm/internal/plan"

// Fixed test values so rendered-frame assertions stay stable
const (
	FixedPlanTitle = "Create a bucket"
)

// SamplePlanYAML is a plan exercising every construct the loader
// accepts: multiple sections, both prompt kinds, defaults, details,
// and a terminal section with explicit options.
const SamplePlanYAML = `title: ` + FixedPlanTitle + `
sections:
  network:
    shortname: Network
    values:
      vpc_id:
        description: Select a VPC
        kind: select
        details: |
          The VPC determines which subnets are reachable.
        choices:
          - value: vpc-1
            label: default (vpc-1)
          - value: vpc-2
            label: staging (vpc-2)
      cidr:
        description: CIDR block
        default: 10.0.0.0/16
  storage:
    shortname: Storage
    values:
      bucket_name:
        description: Bucket name
  __DONE__:
    shortname: Create
    description: Create bucket?
    options:
      - yes
      - name: back
        description: Go back
`

// MinimalPlanYAML is the smallest complete plan: one text prompt and a
// bare terminal section that picks up all defaults.
const MinimalPlanYAML = `title: Minimal
sections:
  main:
    values:
      name:
        description: Your name
  __DONE__: {}
`

// SamplePlan parses SamplePlanYAML. Panics on error so fixtures stay
// one-liners; the loader itself is covered by the plan package tests.
func SamplePlan() *plan.Definition {
	def, err := plan.Parse([]byte(SamplePlanYAML))
	if err != nil {
		panic(err)
	}
	return def
}

// MinimalPlan parses MinimalPlanYAML.
func MinimalPlan() *plan.Definition {
	def, err := plan.Parse([]byte(MinimalPlanYAML))
	if err != nil {
		panic(err)
	}
	return def
}
