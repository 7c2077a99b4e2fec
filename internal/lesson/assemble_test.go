package lesson_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mahitha-23/ClassPilot/internal/lesson"
)

const cellDivisionCompletion = "Title: Cell Division\n" +
	"Description: Cells divide...\n\n" +
	"Learning Outcomes:\n1. Identify phases\n2. Explain mitosis\n\n" +
	"Key Concepts:\n- Mitosis\n- Meiosis\n\n" +
	"Activities:\n- Draw diagrams"

func TestAssembleTopicLesson(t *testing.T) {
	t.Run("WellFormedCompletion", func(t *testing.T) {
		l := lesson.AssembleTopicLesson(cellDivisionCompletion, "Cell Division")

		assert.Equal(t, "Cell Division", l.Title)
		assert.Equal(t, "Cells divide...", l.Description)
		assert.Equal(t, []string{"Identify phases", "Explain mitosis"}, l.Outcomes)
		assert.Equal(t, []string{"Mitosis", "Meiosis"}, l.KeyConcepts)
		assert.Equal(t, []string{"Draw diagrams"}, l.Activities)
	})

	t.Run("HeadingsOnOwnLines", func(t *testing.T) {
		// Models often put each heading on its own line; the capitalized
		// sentence under it is the body, not the next heading.
		text := "Title: Cell Division\n" +
			"Description:\nCells divide rapidly.\n\n" +
			"Learning Outcomes:\n1. Identify phases\n\n" +
			"Key Concepts:\n- Mitosis\n\n" +
			"Activities:\n- Draw diagrams"

		l := lesson.AssembleTopicLesson(text, "Cell Division")
		assert.Equal(t, "Cells divide rapidly.", l.Description)
		assert.Equal(t, []string{"Identify phases"}, l.Outcomes)
	})

	t.Run("EmptyCompletionFallsBackToDefaults", func(t *testing.T) {
		l := lesson.AssembleTopicLesson("", "Photosynthesis")

		assert.Equal(t, "Understanding Photosynthesis", l.Title)
		assert.Equal(t, "Learn about Photosynthesis and its applications.", l.Description)
		assert.Len(t, l.Outcomes, 3)
		assert.Len(t, l.KeyConcepts, 3)
		assert.Len(t, l.Activities, 3)
		assert.Equal(t, "Understand the basics of Photosynthesis", l.Outcomes[0])
	})

	t.Run("TotalCoverage", func(t *testing.T) {
		for name, text := range map[string]string{
			"empty":       "",
			"garbage":     "%%% ??? !!",
			"headersOnly": "Learning Outcomes:\n\nKey Concepts:\n\nActivities:\n",
		} {
			t.Run(name, func(t *testing.T) {
				l := lesson.AssembleTopicLesson(text, "Gravity")
				assert.NotEmpty(t, l.Title)
				assert.NotEmpty(t, l.Description)
				assert.NotEmpty(t, l.Outcomes)
				assert.NotEmpty(t, l.KeyConcepts)
				assert.NotEmpty(t, l.Activities)
			})
		}
	})

	t.Run("IdempotentDefaults", func(t *testing.T) {
		first := lesson.AssembleTopicLesson("not a lesson at all", "Magnetism")
		second := lesson.AssembleTopicLesson("not a lesson at all", "Magnetism")
		assert.Equal(t, first, second)
	})
}

func TestAssembleModuleLesson(t *testing.T) {
	t.Run("ModuleFieldsExtracted", func(t *testing.T) {
		text := "Title: Intro to Algebra\n" +
			"Description: Solving for unknowns...\n\n" +
			"Learning Outcomes:\n1. Solve linear equations\n\n" +
			"Key Concepts:\n- Variables\n\n" +
			"Activities:\n- Worksheet drills\n\n" +
			"Difficulty: Intermediate\n" +
			"Prerequisites: Basic arithmetic\n" +
			"Estimated Time: 45 minutes"

		l := lesson.AssembleModuleLesson(text, "Algebra Basics")
		assert.Equal(t, "Intro to Algebra", l.Title)
		assert.Equal(t, lesson.DifficultyIntermediate, l.Difficulty)
		assert.Equal(t, "Basic arithmetic", l.Prerequisites)
		assert.Equal(t, "45 minutes", l.EstimatedTime)
	})

	t.Run("EmptyCompletionFallsBackToDefaults", func(t *testing.T) {
		l := lesson.AssembleModuleLesson("", "World History")

		assert.Equal(t, "Lesson for World History", l.Title)
		assert.Equal(t, "This lesson covers key topics within World History.", l.Description)
		assert.Equal(t, lesson.DifficultyBeginner, l.Difficulty)
		assert.Empty(t, l.Prerequisites)
		assert.Equal(t, "30 minutes", l.EstimatedTime)
		require.Len(t, l.Outcomes, 3)
		assert.Equal(t, "Understand the core concepts of World History", l.Outcomes[0])
	})
}

func TestAssembleModuleMetadata(t *testing.T) {
	t.Run("WellFormedCompletion", func(t *testing.T) {
		text := "Module Name: Cell Biology Essentials\n" +
			"Difficulty: Advanced\n" +
			"Prerequisites: Basic chemistry\n" +
			"Estimated Time: 1 hour"

		m := lesson.AssembleModuleMetadata(text, "Cell Division")
		assert.Equal(t, "Cell Biology Essentials", m.ModuleName)
		assert.Equal(t, lesson.DifficultyAdvanced, m.Difficulty)
		assert.Equal(t, "Basic chemistry", m.Prerequisites)
		assert.Equal(t, "1 hour", m.Time)
	})

	t.Run("EmptyCompletionFallsBackToDefaults", func(t *testing.T) {
		m := lesson.AssembleModuleMetadata("", "Cell Division")
		assert.Equal(t, "Cell Division Fundamentals", m.ModuleName)
		assert.Equal(t, lesson.DifficultyBeginner, m.Difficulty)
		assert.Equal(t, "None", m.Prerequisites)
		assert.Equal(t, "30 minutes", m.Time)
	})
}
