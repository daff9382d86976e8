package manifest

// Exemplar is a complete, internally consistent fel4.toml that resolves
// cleanly for every build profile, with whitelist enforcement on. Project
// scaffolding tools write it out as the starting manifest for new projects;
// tests lean on it as a known-good document.
const Exemplar = `[fel4]
artifact-path = "artifacts"
target-specs-path = "targets"
target = "x86_64-sel4-fel4"
platform = "pc99"

[x86_64-sel4-fel4]
BuildWithCommonSimulationSettings = true
KernelArch = "x86"
KernelX86Sel4Arch = "x86_64"
KernelOptimisation = "-O2"
KernelVerificationBuild = false
KernelBenchmarks = "none"
KernelDangerousCodeInjection = false
KernelFastpath = true
KernelNumDomains = 1
LibSel4FunctionAttributes = "public"

[x86_64-sel4-fel4.debug]
KernelDebugBuild = true
KernelPrinting = true

[x86_64-sel4-fel4.release]
KernelDebugBuild = false
KernelPrinting = false

[x86_64-sel4-fel4.pc99]
KernelX86MicroArch = "nehalem"
LibPlatSupportX86ConsoleDevice = "com1"

[x86_64-sel4-fel4.sabre]

[arm-sel4-fel4]
BuildWithCommonSimulationSettings = true
KernelArch = "arm"
KernelArmSel4Arch = "aarch32"
KernelOptimisation = "-O2"
KernelVerificationBuild = false
KernelBenchmarks = "none"
KernelDangerousCodeInjection = false
KernelFastpath = true
KernelNumDomains = 1
LibSel4FunctionAttributes = "public"

[arm-sel4-fel4.debug]
KernelDebugBuild = true
KernelPrinting = true

[arm-sel4-fel4.release]
KernelDebugBuild = false
KernelPrinting = false

[arm-sel4-fel4.pc99]

[arm-sel4-fel4.sabre]
KernelARMPlatform = "sabre"
`
