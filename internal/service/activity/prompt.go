package activity

import (
	"fmt"
	"strings"
)

const systemPrompt = "You are an expert educational activity designer specializing in homeschooling and gifted education. " +
	"You create engaging, age-appropriate activities that promote multiple intelligences, 21st century skills, and SEL. " +
	"Always respond with valid JSON only."

// buildPrompt composes the user prompt for one generation request.
func buildPrompt(in GenerateInput) string {
	return fmt.Sprintf(`Create a comprehensive educational activity for a %d-year-old child.

Subjects to cover: %s
Multiple Intelligences to engage: %s
Available tools: %s

Generate an activity that:
1. Promotes the specified Multiple Intelligences
2. Develops 21st Century Skills (critical thinking, collaboration, creativity, communication)
3. Supports Social and Emotional Learning (SEL)
4. Is age-appropriate and engaging
5. Can be done with the available tools

Respond in the following JSON format:
{
  "title": "Activity Title",
  "description": "Brief overview of the activity (2-3 sentences)",
  "objective": "What the child should be able to do by the end",
  "expected_outcome": "The concrete product or behaviour that shows success",
  "materials_required": ["Material 1", "Material 2", ...],
  "curricular_areas": {
    "ncf_se_2023": ["Area 1", ...],
    "nios_subjects": ["Subject 1", ...],
    "learning_domains": ["Domain 1", ...]
  },
  "instructions": ["Step 1", "Step 2", "Step 3", ...],
  "success_metrics": ["Metric 1", "Metric 2", ...],
  "reflection_question": "One open question for the child to reflect on",
  "learning_outcomes": ["Outcome 1", "Outcome 2", ...],
  "skills": ["Skill 1", "Skill 2", ...],
  "estimated_time": "e.g. 45 minutes",
  "extensions": ["Extension idea 1", ...],
  "discussion_questions": ["Question 1", ...],
  "real_world_connection": "How this connects to everyday life"
}

Make it creative, fun, and educational!`,
		in.Age,
		strings.Join(in.Subjects, ", "),
		strings.Join(in.Intelligences, ", "),
		strings.Join(in.Tools, ", "),
	)
}
