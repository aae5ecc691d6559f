// Package api exposes the register store to Lua plugins.
//
// The RegistersModule registers its functions under the _rs_reg global,
// which plugin runtimes wrap into their public namespace:
//
//	_rs_reg.write("a", {"one", "two"})
//	local values = _rs_reg.read("a")   -- {"one", "two"}
//	_rs_reg.push("a", "three")
//	local line = _rs_reg.last("a")     -- "three"
//
// Register names are single characters. Computed registers reject write and
// push with a Lua error, matching the store's contract.
package api
