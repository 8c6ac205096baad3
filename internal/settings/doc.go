// Package settings compiles the feedbackd configuration into the
// feedback context.
//
// The configuration is a key file whose group headers carry meaning:
// "<kind> <name>[@<parent>]". Event groups ("event ringtone",
// "event sms@ringtone") declare feedback events that may inherit from a
// named parent event; definition groups ("definition ringtone") map
// logical occurrences to event names; the "general" group holds global
// scalars.
//
// Loading resolves every event's inheritance chain parent-first, merges
// child properties over the parent's resolved set, converts the sound,
// volume and vibration values into interned resource descriptors, and
// installs immutable Event records in the context. Malformed values fall
// back to schema defaults and malformed resource items are dropped; only
// a missing configuration file or an inheritance cycle fails the load.
package settings
