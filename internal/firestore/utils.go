package firestore

import (
	"fmt"
	"strings"
)

func treeElement(name string, indent int, last bool) string {
	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", indent))
	if last {
		sb.WriteRune('└')
	} else {
		sb.WriteRune('├')
	}
	sb.WriteString(fmt.Sprintf(" %s", name))
	return sb.String()
}

func treeString(name string, indent int, last bool, value string) string {
	var sb strings.Builder
	sb.WriteString(treeElement(name, indent, last))
	sb.WriteString(": ")
	sb.WriteString(value)
	return sb.String()
}

func treeInt(name string, indent int, last bool, value int) string {
	var sb strings.Builder
	sb.WriteString(treeElement(name, indent, last))
	sb.WriteString(fmt.Sprintf(": %d", value))
	return sb.String()
}

func treeStringSlice(name string, indent int, last bool, values []string) string {
	var sb strings.Builder
	sb.WriteString(treeElement(name, indent, last))
	sb.WriteString(fmt.Sprintf(": [%s]", strings.Join(values, ", ")))
	return sb.String()
}

func treeIntPtr(name string, indent int, last bool, value *int) string {
	var sb strings.Builder
	sb.WriteString(treeElement(name, indent, last))
	if value == nil {
		sb.WriteString(": <nil>")
	} else {
		sb.WriteString(fmt.Sprintf(": %d", *value))
	}
	return sb.String()
}
