package wizard

import (
	"testing"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/stretchr/testify/require"

	"github.com/planterm/planterm/internal/plan"
	"github.com/planterm/planterm/internal/tui/testfixtures"
)

func TestCreateWizardLayout_MissingDoneSection(t *testing.T) {
	t.Parallel()

	def := &plan.Definition{
		Title: "No exit",
		Sections: []*plan.Section{
			{Name: "main", Prompts: []*plan.Prompt{{Name: "x"}}},
		},
	}

	_, err := NewFactory(testDeps(&fakeTraversal{})).CreateWizardLayout(def)
	require.ErrorIs(t, err, ErrMissingDoneSection)
	require.Contains(t, err.Error(), "No exit")
}

func TestCreateWizardLayout_PropagatesDialogErrors(t *testing.T) {
	t.Parallel()

	def := &plan.Definition{
		Title: "Broken",
		Sections: []*plan.Section{
			{Name: plan.DoneSectionName, Options: []plan.Option{{Name: "launch"}}},
		},
	}

	_, err := NewFactory(testDeps(&fakeTraversal{})).CreateWizardLayout(def)
	require.ErrorIs(t, err, ErrUnknownAction)
	require.Contains(t, err.Error(), `"launch"`)
}

func TestCreateWizardLayout_SectionOrderPreserved(t *testing.T) {
	t.Parallel()

	layout, err := NewFactory(testDeps(&fakeTraversal{})).CreateWizardLayout(testfixtures.SamplePlan())
	require.NoError(t, err)

	tabs := layout.Tabs()
	require.Len(t, tabs, 3)
	require.Equal(t, "Network", tabs[0].Label())
	require.Equal(t, "Storage", tabs[1].Label())
	require.Equal(t, "Create", tabs[2].Label())

	// The terminal section's body is the same dialog instance the
	// layout exposes, not a copy.
	bodies := layout.Bodies()
	require.Len(t, bodies, 3)
	require.Same(t, layout.Dialog(), bodies[2])
}

func TestCreateWizardLayout_MinimalPlanDefaults(t *testing.T) {
	t.Parallel()

	layout, err := NewFactory(testDeps(&fakeTraversal{})).CreateWizardLayout(testfixtures.MinimalPlan())
	require.NoError(t, err)

	tabs := layout.Tabs()
	require.Len(t, tabs, 2)
	require.Equal(t, DoneTabLabel, tabs[1].Label())

	// A bare terminal section picks up the default title and actions.
	dialog := layout.Dialog()
	require.Equal(t, DefaultDialogTitle, dialog.Title())
	require.Len(t, dialog.Actions(), 2)
	require.Equal(t, "Yes", dialog.Actions()[0].Label)
	require.Equal(t, "Back", dialog.Actions()[1].Label)
}

func TestLayout_Regions(t *testing.T) {
	t.Parallel()

	det := &fakeDetails{}
	deps := testDeps(&fakeTraversal{})
	deps.Details = det

	layout, err := NewFactory(deps).CreateWizardLayout(testfixtures.SamplePlan())
	require.NoError(t, err)

	area := uv.Rect(0, 0, testfixtures.TestTermWidth, testfixtures.TestTermHeight)
	r := layout.Regions(area)

	require.Equal(t, TitleHeight, r.Title.Dy())
	require.Equal(t, RuleHeight, r.Rule.Dy())
	require.Equal(t, area.Max.Y, r.Rule.Max.Y)

	// Short labels land on the column's minimum width.
	require.Equal(t, TabColumnMinWidth, r.Tabs.Dx())
	require.Equal(t, TitleHeight, r.Tabs.Min.Y)

	// Without details the body column runs down to the rule.
	require.Zero(t, r.Details.Dy())
	require.Zero(t, r.Toolbar.Dy())
	bodyHeight := testfixtures.TestTermHeight - TitleHeight - RuleHeight
	require.Equal(t, bodyHeight, r.Body.Dy())

	// With the panel open, it claims its height plus the toolbar row.
	det.has = true
	det.open = true
	r = layout.Regions(area)
	panelHeight := layout.Details().Height(bodyHeight)
	require.Equal(t, panelHeight, r.Details.Dy())
	require.Equal(t, 1, r.Toolbar.Dy())
	require.Equal(t, bodyHeight-panelHeight-1, r.Body.Dy())
}

func TestLayout_DrawFirstPrompt(t *testing.T) {
	t.Parallel()

	trav := &fakeTraversal{}
	ren := &fakeRenderer{current: "network"}
	deps := testDeps(trav)
	deps.Renderer = ren

	layout, err := NewFactory(deps).CreateWizardLayout(testfixtures.SamplePlan())
	require.NoError(t, err)

	out := testfixtures.Render(func(canvas uv.ScreenBuffer) {
		layout.Draw(canvas, canvas.Bounds())
	})

	require.Contains(t, out, testfixtures.FixedPlanTitle)
	require.Contains(t, out, "Network")
	require.Contains(t, out, "Storage")
	require.Contains(t, out, "Create")
	require.Contains(t, out, "[network body]")
	require.NotContains(t, out, "[storage body]")
	require.NotContains(t, out, "Create bucket?")
	require.Contains(t, out, "─")

	// Invisible bodies are skipped outright, not drawn and covered.
	require.Equal(t, 1, layout.Bodies()[0].(*fakeBody).draws)
	require.Zero(t, layout.Bodies()[1].(*fakeBody).draws)
}

func TestLayout_DrawAllAnswered(t *testing.T) {
	t.Parallel()

	trav := &fakeTraversal{done: true}
	deps := testDeps(trav)

	layout, err := NewFactory(deps).CreateWizardLayout(testfixtures.SamplePlan())
	require.NoError(t, err)

	out := testfixtures.Render(func(canvas uv.ScreenBuffer) {
		layout.Draw(canvas, canvas.Bounds())
	})

	// Only the completion dialog owns the body area now.
	require.Contains(t, out, "Create bucket?")
	require.Contains(t, out, "Yes")
	require.Contains(t, out, "Go back")
	require.NotContains(t, out, "[network body]")
	require.NotContains(t, out, "[storage body]")
}

func TestLayout_DrawDetailsPanel(t *testing.T) {
	t.Parallel()

	deps := testDeps(&fakeTraversal{})
	deps.Renderer = &fakeRenderer{current: "network"}
	deps.Details = &fakeDetails{
		has:     true,
		open:    true,
		title:   "Select a VPC",
		content: "The VPC determines which subnets are reachable.",
	}

	layout, err := NewFactory(deps).CreateWizardLayout(testfixtures.SamplePlan())
	require.NoError(t, err)

	out := testfixtures.Render(func(canvas uv.ScreenBuffer) {
		layout.Draw(canvas, canvas.Bounds())
	})

	require.Contains(t, out, "Select a VPC")
	require.Contains(t, out, "The VPC determines which subnets are reachable.")
	require.Contains(t, out, "[F2]")
	require.Contains(t, out, "Switch to Select a VPC")
	require.Contains(t, out, "Show/Hide Select a VPC")
}

func TestLayout_ToolbarShowsWhilePanelClosed(t *testing.T) {
	t.Parallel()

	deps := testDeps(&fakeTraversal{})
	deps.Renderer = &fakeRenderer{current: "network"}
	deps.Details = &fakeDetails{
		has:     true,
		open:    false,
		title:   "Select a VPC",
		content: "The VPC determines which subnets are reachable.",
	}

	layout, err := NewFactory(deps).CreateWizardLayout(testfixtures.SamplePlan())
	require.NoError(t, err)

	out := testfixtures.Render(func(canvas uv.ScreenBuffer) {
		layout.Draw(canvas, canvas.Bounds())
	})

	// The hint bar advertises the panel even while it is closed.
	require.Contains(t, out, "[F3]")
	require.Contains(t, out, "Show/Hide Select a VPC")
	require.NotContains(t, out, "The VPC determines which subnets are reachable.")
}

func TestDoneTab_StateFollowsTraversal(t *testing.T) {
	t.Parallel()

	trav := &fakeTraversal{}
	tab := &doneTab{label: "Create", trav: trav}

	pending := testfixtures.RenderSized(20, 1, func(canvas uv.ScreenBuffer) {
		tab.Draw(canvas, canvas.Bounds())
	})
	require.Contains(t, pending, "Create")
	require.NotContains(t, pending, "▸")

	trav.done = true
	current := testfixtures.RenderSized(20, 1, func(canvas uv.ScreenBuffer) {
		tab.Draw(canvas, canvas.Bounds())
	})
	require.Contains(t, current, "▸ Create")
}
