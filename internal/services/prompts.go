package services

import "strings"

// The two instructional prompts sent to the generation service. Both demand
// a bare JSON object; anything else the model returns is handled by the
// fallback paths in the callers.

const extractPromptTemplate = `You are given a LinkedIn post. You need to extract number of lines, language of the post and tags.
1. Return a valid JSON. No preamble.
2. JSON object should have exactly three keys: line_count, language and tags.
3. tags is an array of text tags. Extract maximum two tags.
4. Language should be English or Hinglish (Hinglish means hindi + english)

Here is the actual post on which you need to perform this task:
{post}`

const unifyPromptTemplate = `I will give you a list of tags. You need to unify tags with the following requirements,
1. Tags are unified and merged to create a shorter list.
   Example 1: "Jobseekers", "Job Hunting" can be all merged into a single tag "Job Search".
   Example 2: "Motivation", "Inspiration", "Drive" can be mapped to "Motivation"
   Example 3: "Personal Growth", "Personal Development", "Self Improvement" can be mapped to "Self Improvement"
   Example 4: "Scam Alert", "Job Scam" etc. can be mapped to "Scams"
2. Each tag should follow title case convention. example: "Motivation", "Job Search"
3. Output should be a JSON object, No preamble
4. Output should have mapping of original tag and the unified tag.
   For example: {"Jobseekers": "Job Search", "Job Hunting": "Job Search", "Motivation": "Motivation"}

Here is the list of tags:
{tags}`

func renderPrompt(template, placeholder, value string) string {
	return strings.ReplaceAll(template, placeholder, value)
}

// stripCodeFences removes a surrounding markdown code fence, which some
// models wrap around JSON output despite the "no preamble" instruction.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
