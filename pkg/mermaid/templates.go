package mermaid

import "strings"

// Topic is a coarse classification of a user prompt, used to pick a fallback
// or override template. It is derived per request and never persisted.
type Topic string

const (
	TopicLogin        Topic = "login"
	TopicRegistration Topic = "registration"
	TopicCheckout     Topic = "checkout"
	TopicAPIRequest   Topic = "api_request"
	TopicGeneric      Topic = "generic"
)

// Classify maps a prompt to a Topic by case-insensitive keyword matching.
// First match wins, in priority order.
func Classify(prompt string) Topic {
	p := strings.ToLower(prompt)
	switch {
	case strings.Contains(p, "login"):
		return TopicLogin
	case strings.Contains(p, "register"): // also matches "registration"
		return TopicRegistration
	case strings.Contains(p, "checkout"), strings.Contains(p, "payment"):
		return TopicCheckout
	case strings.Contains(p, "api"):
		return TopicAPIRequest
	default:
		return TopicGeneric
	}
}

// Template renders the canonical hand-authored diagram for a topic with the
// requested orientation. Templates are plain data, built fresh per call and
// serialized through the same renderer as repaired diagrams.
func Template(topic Topic, orientation Orientation) string {
	return templateDiagram(topic, orientation).String()
}

func templateDiagram(topic Topic, orientation Orientation) *Diagram {
	d := &Diagram{Orientation: orientation}
	link := func(from, fromLabel, to, toLabel, condition string) {
		d.Statements = append(d.Statements, Statement{Edge: &Edge{
			From:      Node{ID: from, Label: fromLabel},
			To:        Node{ID: to, Label: toLabel},
			Condition: condition,
		}})
	}

	switch topic {
	case TopicLogin:
		link("Start", "User Begins Login", "EnterCredentials", "Enter Credentials", "")
		link("EnterCredentials", "", "ValidateCredentials", "Validate Credentials", "")
		link("ValidateCredentials", "", "Success", "Login Successful", "Valid")
		link("ValidateCredentials", "", "Retry", "Retry Login", "Invalid")
		link("Retry", "", "EnterCredentials", "", "")
		link("Success", "", "End", "User Authenticated", "")
	case TopicRegistration:
		link("Start", "User Begins Registration", "EnterDetails", "Enter User Details", "")
		link("EnterDetails", "", "ValidateDetails", "Validate Details", "")
		link("ValidateDetails", "", "CreateAccount", "Create Account", "Valid")
		link("ValidateDetails", "", "FixDetails", "Correct Details", "Invalid")
		link("FixDetails", "", "EnterDetails", "", "")
		link("CreateAccount", "", "End", "Registration Complete", "")
	case TopicCheckout:
		link("Start", "User Begins Checkout", "ReviewCart", "Review Cart Items", "")
		link("ReviewCart", "", "EnterPayment", "Enter Payment Details", "")
		link("EnterPayment", "", "ValidatePayment", "Validate Payment", "")
		link("ValidatePayment", "", "PlaceOrder", "Place Order", "Valid")
		link("ValidatePayment", "", "RetryPayment", "Update Payment", "Invalid")
		link("RetryPayment", "", "EnterPayment", "", "")
		link("PlaceOrder", "", "End", "Order Complete", "")
	case TopicAPIRequest:
		link("Start", "Client Sends Request", "ValidateRequest", "Validate Request", "")
		link("ValidateRequest", "", "ProcessRequest", "Process Request", "Valid")
		link("ValidateRequest", "", "RejectRequest", "Reject Request", "Invalid")
		link("ProcessRequest", "", "GenerateResponse", "Generate Response", "")
		link("GenerateResponse", "", "End", "Send Response to Client", "")
		link("RejectRequest", "", "EndError", "Return Error Response", "")
	default:
		link("Start", "Begin Process", "Input", "Process Input", "")
		link("Input", "", "Validate", "Validate Input", "")
		link("Validate", "", "Process", "Process Data", "Valid")
		link("Validate", "", "Retry", "Retry Input", "Invalid")
		link("Retry", "", "Input", "", "")
		link("Process", "", "Output", "Generate Output", "")
		link("Output", "", "End", "Process Complete", "")
	}
	return d
}
