package impl

import (
	"fmt"
	"strings"
)

const recommendationPromptTemplate = `You are an expert financial advisor. Analyze the client data provided and suggest relevant insurance and investment products to enhance cross-selling opportunities.

Client Data: %s

Provide clear and concise recommendations, explaining why each product is suitable for the client.
Output insurance recommendations and investment recommendations in the specified JSON format.`

const autofillPromptTemplate = `You are an AI assistant that helps autofill missing client information based on available data.

The client's name is %s.

You are given the following available data about the client:
%s

The following fields need to be autofilled:
%s

Return the autofilled data as a JSON object. If you cannot fill a particular field, leave it blank in the JSON.
Do not add any conversational text or explanations, only the JSON object.
Include only the requested fields as keys.`

func recommendationPrompt(clientData string) string {
	return fmt.Sprintf(recommendationPromptTemplate, clientData)
}

func autofillPrompt(clientName, availableData string, missingFields []string) string {
	return fmt.Sprintf(autofillPromptTemplate, clientName, availableData, strings.Join(missingFields, ", "))
}

// splitFields parses a comma-separated field list, dropping blanks and duplicates.
func splitFields(list string) []string {
	parts := strings.Split(list, ",")
	fields := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))

	for _, part := range parts {
		field := strings.TrimSpace(part)
		if field == "" {
			continue
		}

		if _, ok := seen[field]; ok {
			continue
		}

		seen[field] = struct{}{}
		fields = append(fields, field)
	}

	return fields
}
