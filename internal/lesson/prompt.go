package lesson

import "fmt"

// Intent selects one of the fixed generation request shapes.
type Intent int

const (
	// IntentTopicLesson asks for a full lesson about a free-form topic.
	IntentTopicLesson Intent = iota
	// IntentModuleLesson asks for a lesson that fits a named module,
	// including the module-level fields.
	IntentModuleLesson
	// IntentModuleMetadata asks only for module metadata, on a short token
	// budget.
	IntentModuleMetadata
)

// Prompt is a fully built generation request for the completion provider.
type Prompt struct {
	Text            string
	MaxOutputTokens int
	Temperature     float32
	SystemPersona   string
}

const topicLessonTemplate = `Create a comprehensive educational lesson about "%s". Format your response with the following sections:

Title: A clear, compelling title for the lesson
Description: A thorough introduction to the topic (2-3 paragraphs)
Learning Outcomes: List 4-5 specific learning outcomes, each starting with a verb
Key Concepts: List 5-7 key concepts that students should master
Activities: List 3-5 engaging learning activities

Make sure to format each section with clear headings.`

const moduleLessonTemplate = `Based on the module title "%s", create an appropriate educational lesson that would fit in this module. Format your response with the following sections:

Title: A specific lesson title that fits within the "%s" module
Description: A thorough introduction to the topic (2-3 paragraphs)
Learning Outcomes: List 4-5 specific learning outcomes, each starting with a verb
Key Concepts: List 5-7 key concepts that students should master
Activities: List 3-5 engaging learning activities
Difficulty: Specify one level - Beginner, Intermediate, or Advanced
Prerequisites: List any prerequisite knowledge or skills separated by commas
Estimated Time: How long this lesson would take to complete (e.g., 30 minutes, 1 hour)

Make sure to format each section with clear headings and ensure the content is directly relevant to the module title.`

const moduleMetadataTemplate = `For an educational lesson about "%s", suggest appropriate module metadata with the following format:

Module Name: A descriptive name for the larger module this lesson would fit into
Difficulty: Specify one of these levels - Beginner, Intermediate, or Advanced
Prerequisites: List any prerequisite knowledge or skills separated by commas
Estimated Time: How long this lesson would take to complete (e.g., 30 minutes, 1 hour)

Keep your response brief and structured exactly as requested.`

const (
	lessonPersona = "You are an expert educational content creator specializing in creating structured, engaging lessons."

	moduleLessonPersona = "You are an expert educational content creator specializing in creating structured, engaging lessons that fit within larger educational modules."

	metadataPersona = "You are an expert curriculum designer who creates metadata for educational modules."
)

const defaultTemperature = 0.7

// BuildPrompt interpolates the subject into the intent's instruction
// template. Generation parameters are fixed per intent.
func BuildPrompt(intent Intent, subject string) Prompt {
	switch intent {
	case IntentModuleLesson:
		return Prompt{
			Text:            fmt.Sprintf(moduleLessonTemplate, subject, subject),
			MaxOutputTokens: 2000,
			Temperature:     defaultTemperature,
			SystemPersona:   moduleLessonPersona,
		}
	case IntentModuleMetadata:
		return Prompt{
			Text:            fmt.Sprintf(moduleMetadataTemplate, subject),
			MaxOutputTokens: 500,
			Temperature:     defaultTemperature,
			SystemPersona:   metadataPersona,
		}
	default:
		return Prompt{
			Text:            fmt.Sprintf(topicLessonTemplate, subject),
			MaxOutputTokens: 2000,
			Temperature:     defaultTemperature,
			SystemPersona:   lessonPersona,
		}
	}
}
