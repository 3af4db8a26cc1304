// Package types holds the plain data types shared by the converter's
// services, stores and transports.
package types
