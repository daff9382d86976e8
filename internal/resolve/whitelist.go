package resolve

// KnownProperties is the fixed set of seL4 kernel configuration property
// names a resolved configuration is permitted to contain when whitelist
// enforcement is on. It tracks the options understood by the seL4 kernel's
// CMake build; anything else in a manifest is either a typo or an option
// this toolchain does not support.
var KnownProperties = toSet([]string{
	"BuildWithCommonSimulationSettings",
	"ElfloaderErrata764369",
	"ElfloaderImage",
	"ElfloaderMode",
	"HardwareDebugAPI",
	"KernelAArch32FPUEnableContextSwitch",
	"KernelARMPlatform",
	"KernelArch",
	"KernelArmEnableA9Prefetcher",
	"KernelArmExportPMUUser",
	"KernelArmSel4Arch",
	"KernelBenchmarks",
	"KernelColourPrinting",
	"KernelDangerousCodeInjection",
	"KernelDangerousCodeInjectionOnUndefInstr",
	"KernelDebugBuild",
	"KernelDebugDisableBranchPrediction",
	"KernelDebugDisableL2Cache",
	"KernelFPUMaxRestoresSinceSwitch",
	"KernelFSGSBase",
	"KernelFWholeProgram",
	"KernelFastpath",
	"KernelHugePage",
	"KernelIOMMU",
	"KernelIRQReporting",
	"KernelLZ4CompressedKernel",
	"KernelMaxNumBootinfoUntypedCaps",
	"KernelMaxNumIOAPIC",
	"KernelMaxNumNodes",
	"KernelMultiboot1Header",
	"KernelMultiboot2Header",
	"KernelMultibootGFXMode",
	"KernelNumDomains",
	"KernelNumPriorities",
	"KernelOptimisation",
	"KernelPrinting",
	"KernelRetypeFanOutLimit",
	"KernelRootCNodeSizeBits",
	"KernelSkimWindow",
	"KernelSupportPCID",
	"KernelSyscall",
	"KernelTimeSlice",
	"KernelTimerTickMS",
	"KernelUserStackTraceLength",
	"KernelVTX",
	"KernelVerificationBuild",
	"KernelX86DangerousMSR",
	"KernelX86IBPBOnContextSwitch",
	"KernelX86IBRSMode",
	"KernelX86MicroArch",
	"KernelX86RSBOnContextSwitch",
	"KernelX86Sel4Arch",
	"KernelXSaveSize",
	"LibPlatSupportX86ConsoleDevice",
	"LibSel4FunctionAttributes",
})

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}
