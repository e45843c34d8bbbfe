package compiler

import (
	"github.com/reoring/frameschema/jsonschema"
	"github.com/reoring/frameschema/question"
)

const (
	pricePattern = `^\d{1,15}(?:\.\d{1,5})?$`
	// Positive amounts with no decimals or exactly two; "0.xx" is the only
	// form allowed a leading zero.
	restrictedPricePattern = `^(?:[1-9]\d{0,14}(?:\.\d{2})?|0\.(?:[1-9]\d|\d[1-9]))$`
)

var (
	priceUnits = []string{
		"Unit", "Person", "Licence", "User", "Device", "Instance", "Server",
		"Virtual machine", "Transaction", "Megabyte", "Gigabyte", "Terabyte",
	}
	priceIntervals = []string{
		"Second", "Minute", "Hour", "Day", "Week", "Month", "Quarter", "6 months", "Year",
	}
	hoursForPrice = []string{
		"1 hour", "2 hours", "3 hours", "4 hours", "5 hours", "6 hours", "7 hours", "8 hours",
	}
)

// PriceString is the schema of a price amount. Optional amounts may also be
// the empty string.
func PriceString(optional, decimalRestricted bool) jsonschema.Schema {
	p := pricePattern
	if decimalRestricted {
		p = restrictedPricePattern
	}
	if optional {
		p = "^$|" + p
	}
	return jsonschema.Schema{"type": "string", "pattern": p}
}

// pricingProperties builds one property per declared pricing role. Each role
// is optional on its own; roles are looked up by name, never by position.
func pricingProperties(q *question.Question) jsonschema.Schema {
	out := jsonschema.Schema{}
	for _, role := range question.PricingRoles {
		name, ok := q.Fields[role]
		if !ok {
			continue
		}
		optional := q.OptionalField(role)
		switch role {
		case question.RolePrice, question.RoleMinimumPrice, question.RoleMaximumPrice:
			out[name] = PriceString(optional, q.DecimalPlaceRestriction)
		case question.RolePriceUnit:
			out[name] = fixedEnum(priceUnits, optional)
		case question.RolePriceInterval:
			out[name] = fixedEnum(priceIntervals, optional)
		case question.RoleHoursForPrice:
			out[name] = fixedEnum(hoursForPrice, false)
		}
	}
	return out
}

func fixedEnum(values []string, optional bool) jsonschema.Schema {
	out := make([]string, 0, len(values)+1)
	if optional {
		out = append(out, "")
	}
	return jsonschema.Schema{"enum": append(out, values...)}
}
