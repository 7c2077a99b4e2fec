package lesson

import (
	"fmt"

	"github.com/Mahitha-23/ClassPilot/internal/extract"
)

// Assembly turns raw completion text into a fully populated record. Every
// field is either extracted or substituted with a deterministic default
// templated on the subject, so the result never has an absent field and
// every list has at least one element.

// AssembleTopicLesson builds a lesson from a lesson-from-topic completion.
func AssembleTopicLesson(text, topic string) Lesson {
	return Lesson{
		Title:       scalarOr(text, "Title", fmt.Sprintf("Understanding %s", topic)),
		Description: sectionOr(text, "Description", fmt.Sprintf("Learn about %s and its applications.", topic)),
		Outcomes: itemsOr(text, "Learning Outcomes", false, []string{
			fmt.Sprintf("Understand the basics of %s", topic),
			fmt.Sprintf("Explain the importance of %s in context", topic),
			fmt.Sprintf("Apply knowledge of %s in practical situations", topic),
		}),
		KeyConcepts: itemsOr(text, "Key Concepts", false, []string{
			fmt.Sprintf("Definition of %s", topic),
			fmt.Sprintf("History and development of %s", topic),
			"Applications and significance",
		}),
		Activities: itemsOr(text, "Activities", true, []string{
			fmt.Sprintf("Research project on %s", topic),
			fmt.Sprintf("Group discussion about %s", topic),
			fmt.Sprintf("Practical demonstration of %s", topic),
		}),
	}
}

// AssembleModuleLesson builds a lesson from a lesson-from-module completion,
// which additionally carries the module-level fields.
func AssembleModuleLesson(text, moduleName string) Lesson {
	return Lesson{
		Title:       scalarOr(text, "Title", fmt.Sprintf("Lesson for %s", moduleName)),
		Description: sectionOr(text, "Description", fmt.Sprintf("This lesson covers key topics within %s.", moduleName)),
		Outcomes: itemsOr(text, "Learning Outcomes", false, []string{
			fmt.Sprintf("Understand the core concepts of %s", moduleName),
			fmt.Sprintf("Apply knowledge of %s in practical situations", moduleName),
			fmt.Sprintf("Analyze the importance of %s in broader contexts", moduleName),
		}),
		KeyConcepts: itemsOr(text, "Key Concepts", false, []string{
			fmt.Sprintf("Definition of key terms in %s", moduleName),
			fmt.Sprintf("Historical development of %s", moduleName),
			fmt.Sprintf("Practical applications of %s", moduleName),
		}),
		Activities: itemsOr(text, "Activities", true, []string{
			fmt.Sprintf("Research project on %s", moduleName),
			fmt.Sprintf("Group discussion about %s", moduleName),
			fmt.Sprintf("Practical demonstration of %s concepts", moduleName),
		}),
		Difficulty:    scalarOr(text, "Difficulty", DifficultyBeginner),
		Prerequisites: scalarOr(text, "Prerequisites", ""),
		EstimatedTime: keywordOr(text, []string{"time", "estimated time"}, "30 minutes"),
	}
}

// AssembleModuleMetadata builds module metadata from a module-metadata
// completion.
func AssembleModuleMetadata(text, topic string) ModuleMetadata {
	return ModuleMetadata{
		ModuleName:    keywordOr(text, []string{"module name", "name"}, fmt.Sprintf("%s Fundamentals", topic)),
		Difficulty:    scalarOr(text, "Difficulty", DifficultyBeginner),
		Prerequisites: scalarOr(text, "Prerequisites", "None"),
		Time:          keywordOr(text, []string{"time", "estimated time"}, "30 minutes"),
	}
}

func scalarOr(text, label, def string) string {
	if v, ok := extract.Scalar(text, label); ok {
		return v
	}
	return def
}

func sectionOr(text, label, def string) string {
	if v, ok := extract.Section(text, label, false); ok {
		return v
	}
	return def
}

func itemsOr(text, label string, final bool, def []string) []string {
	if v, ok := extract.Items(text, label, final); ok {
		return v
	}
	return def
}

func keywordOr(text string, labels []string, def string) string {
	if v, ok := extract.Keyword(text, labels...); ok {
		return v
	}
	return def
}
