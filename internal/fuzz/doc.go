// Package fuzztests houses Go fuzz harnesses for the text inputs tokattr
// accepts: packed values and token-line files.
//
// Назначение: прогонять произвольные байты через attrs.Parse, token.ParseLines
// и форму хранения store.Payload.
//
// Не делает: запись файлов, выполнение CLI.
package fuzztests
