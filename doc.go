// Package mslex splits and quotes command-line strings the way Windows
// programs do.
//
// Windows does not tokenize command lines in the kernel; each program's C
// runtime does it, and two materially different grammars are in
// circulation: the one implemented by msvcrt.dll and CommandLineToArgvW,
// and the one implemented by the Universal C Runtime that modern compilers
// link against. SplitMSVCRT and SplitUCRT reproduce the two grammars
// character for character. Split runs both and refuses to guess when they
// disagree. Quote and Join produce strings that re-tokenize identically
// under either grammar, and QuoteCmd and JoinCmd additionally survive a
// trip through cmd.exe.
package mslex
