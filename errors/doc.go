/*
Package errors implements the error system used across the engine.

Each error kind is a registered root error with a unique numeric code.
Runtime errors are created by wrapping a root with contextual information.
Use the root's Is method to test which kind a returned error belongs to,
regardless of how many times it was wrapped on the way up.
*/
package errors
