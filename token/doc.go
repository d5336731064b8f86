// Package token scans JSON text into tokens and handles JSON string
// quoting. Number tokens keep their source bytes so that the parser can
// classify integer vs float by the presence of a decimal point.
package token
