package gemini

// EventExtractionPrompt is the fixed instruction sent to Gemini ahead of the
// user's text. The labeled block format and the few-shot examples are load
// bearing: the block parser keys on "Event Title:/Date:/Time:/Details:" and
// treats the example's "12:00 PM" as a placeholder to be overridden by
// day-part words found in the original text.
const EventExtractionPrompt = `Analyze the following text and extract ALL events, meetings, deadlines, and activities.
Look for phrases like "I have to", "I will", "I need to", "going to", etc.

For each event, format EXACTLY as:
Event Title: [Event Name]
Date: [Date - be specific and include year if mentioned]
Time: [Time in 12-hour format with AM/PM]
Details: [Any additional details, requirements, or description]

Important:
- Extract EVERY single event mentioned
- Look for intent phrases like "I will", "I have to", "need to", "going to"
- Convert casual mentions into proper events
- Keep original date/time format from the text
- Include ALL details and context
- For assignments, include both opening and due times
- For meetings, include location and attendees
- If multiple events share the same date, specify "same as above" for the date

Example inputs and responses:

Input: "I will eat sushi on friday"
Response:
Event Title: Sushi Meal
Date: friday
Time: 12:00 PM
Details: N/A

Input: "I have to submit the report by next monday 3pm"
Response:
Event Title: Report Submission
Date: next monday
Time: 3:00 PM
Details: Deadline for report submission

Input: "going to the gym tomorrow morning"
Response:
Event Title: Gym Session
Date: tomorrow
Time: 9:00 AM
Details: N/A

Text to analyze:
`

// BuildEventExtractionPrompt appends the user's raw text to the fixed template.
func BuildEventExtractionPrompt(text string) string {
	return EventExtractionPrompt + text
}
