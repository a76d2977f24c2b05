package main

import (
	"crypto/sha256"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/francoispqt/gojay"
	"golang.org/x/crypto/pbkdf2"

	"github.com/nPaBwaYT/descbc/cripta"
)

/*
Шифрование файла DES в режиме CBC
go run . -e input.txt output.enc

Дешифрование файла
go run . -d -k=0123456789ABCDEF -iv=FEDCBA9876543210 input.enc output.txt

Ключ из пароля (PBKDF2-SHA256)
go run . -e -pass=secret -salt=00112233 input.txt output.enc

Параллельное дешифрование и трассировка раундов (JSON в stderr)
go run . -d -parallel -k=... -iv=... input.enc output.txt
go run . -e -trace -k=... -iv=... input.txt output.enc 2>trace.jsonl

Режимы набивки: pkcs7 (по умолчанию), ansi, iso
*/

const (
	keyLength        = 8
	ivLength         = 8
	defaultIteration = 100000
)

func main() {
	encryptFlag := flag.Bool("e", false, "Режим шифрования")
	decryptFlag := flag.Bool("d", false, "Режим дешифрования")
	paddingFlag := flag.String("p", "pkcs7", "Режим набивки: pkcs7, ansi, iso")
	parallelFlag := flag.Bool("parallel", false, "Параллельное дешифрование блоков")
	keyFlag := flag.String("k", "", "Ключ в hex (если не указан, будет сгенерирован)")
	ivFlag := flag.String("iv", "", "Вектор инициализации в hex (если не указан, будет сгенерирован)")
	passFlag := flag.String("pass", "", "Пароль для получения ключа через PBKDF2")
	saltFlag := flag.String("salt", "", "Соль PBKDF2 в hex")
	iterFlag := flag.Int("iter", defaultIteration, "Число итераций PBKDF2")
	traceFlag := flag.Bool("trace", false, "Трассировка блоков и раундов в stderr (JSON)")

	flag.Parse()

	if *encryptFlag == *decryptFlag {
		fmt.Println("Использование:")
		fmt.Println("  Шифрование: go run . -e input.txt output.enc")
		fmt.Println("  Дешифрование: go run . -d -k=KEY -iv=IV input.enc output.txt")
		fmt.Println("\nФлаги:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	args := flag.Args()
	if len(args) != 2 {
		fmt.Println("Ошибка: необходимо указать входной и выходной файлы")
		os.Exit(1)
	}

	inputFile := args[0]
	outputFile := args[1]

	if _, err := os.Stat(inputFile); os.IsNotExist(err) {
		log.Fatalf("Ошибка: входной файл '%s' не существует", inputFile)
	}

	paddingMode, err := parsePaddingMode(*paddingFlag)
	if err != nil {
		log.Fatalf("Ошибка набивки: %v", err)
	}

	var key, salt []byte
	if *passFlag != "" {
		key, salt, err = deriveKey(*passFlag, *saltFlag, *iterFlag, *decryptFlag)
	} else {
		key, err = getOrGenerate(*keyFlag, keyLength, *decryptFlag)
	}
	if err != nil {
		log.Fatalf("Ошибка работы с ключом: %v", err)
	}
	if cripta.IsWeakKey(key) {
		log.Printf("Предупреждение: слабый или полуслабый ключ DES %x", key)
	}

	iv, err := getOrGenerate(*ivFlag, ivLength, *decryptFlag)
	if err != nil {
		log.Fatalf("Ошибка работы с IV: %v", err)
	}

	des, err := cripta.NewDESCipher()
	if err != nil {
		log.Fatalf("Ошибка создания шифра: %v", err)
	}

	ctx, err := cripta.NewCipherContext(des, key, paddingMode, iv, *parallelFlag)
	if err != nil {
		log.Fatalf("Ошибка создания контекста шифрования: %v", err)
	}

	var tracer *jsonTracer
	if *traceFlag {
		tracer = newJSONTracer(os.Stderr)
		ctx.SetTracer(tracer)
	}

	parallel := *decryptFlag && ctx.DecryptsInParallel()
	startTime := time.Now()

	if *encryptFlag {
		err = ctx.EncryptFile(inputFile, outputFile)
		if err != nil {
			log.Fatalf("Ошибка шифрования: %v", err)
		}
		fmt.Printf("Файл успешно зашифрован: %s -> %s\n", inputFile, outputFile)
	} else {
		err = ctx.DecryptFile(inputFile, outputFile)
		if err != nil {
			log.Fatalf("Ошибка дешифрования: %v", err)
		}
		fmt.Printf("Файл успешно дешифрован: %s -> %s\n", inputFile, outputFile)
	}

	if tracer != nil && tracer.err != nil {
		log.Printf("Ошибка записи трассировки: %v", tracer.err)
	}

	duration := time.Since(startTime)
	fileInfo, _ := os.Stat(inputFile)

	fmt.Printf("\nИнформация:\n")
	fmt.Printf("  Набивка: %s\n", paddingMode)
	fmt.Printf("  Параллельная обработка: %v\n", parallel)
	fmt.Printf("  Размер файла: %d байт\n", fileInfo.Size())
	fmt.Printf("  Время выполнения: %v\n", duration)
	fmt.Printf("  Ключ: %x\n", key)
	if salt != nil {
		fmt.Printf("  Соль: %x\n", salt)
	}
	fmt.Printf("  IV: %x\n", iv)
}

// getOrGenerate декодирует hex значение или генерирует случайное.
// При дешифровании генерировать нечего, значение обязательно.
func getOrGenerate(hexValue string, length int, required bool) ([]byte, error) {
	if hexValue != "" {
		return parseHexString(hexValue, length)
	}
	if required {
		return nil, fmt.Errorf("значение обязательно при дешифровании")
	}

	data := make([]byte, length)
	if _, err := cripta.GenerateRandomBytes(data); err != nil {
		return nil, fmt.Errorf("ошибка генерации: %w", err)
	}
	return data, nil
}

// deriveKey получает 8-байтовый ключ DES из пароля. При шифровании пустая
// соль заменяется случайной, её нужно сохранить для дешифрования.
func deriveKey(password, saltHex string, iterations int, required bool) ([]byte, []byte, error) {
	if iterations < 1 {
		return nil, nil, fmt.Errorf("число итераций должно быть положительным: %d", iterations)
	}

	var salt []byte
	var err error
	if saltHex != "" {
		salt, err = hex.DecodeString(saltHex)
		if err != nil {
			return nil, nil, fmt.Errorf("неверный hex формат соли: %w", err)
		}
	} else if required {
		return nil, nil, fmt.Errorf("соль обязательна при дешифровании с паролем")
	} else {
		salt = make([]byte, 16)
		if _, err := cripta.GenerateRandomBytes(salt); err != nil {
			return nil, nil, fmt.Errorf("ошибка генерации соли: %w", err)
		}
	}

	key := pbkdf2.Key([]byte(password), salt, iterations, keyLength, sha256.New)
	return cripta.SetParity(key), salt, nil
}

func parseHexString(hexStr string, expectedLength int) ([]byte, error) {
	data, err := hex.DecodeString(hexStr)
	if err != nil {
		return nil, fmt.Errorf("неверный hex формат: %w", err)
	}

	if len(data) != expectedLength {
		return nil, fmt.Errorf("неверная длина: ожидается %d байт, получено %d", expectedLength, len(data))
	}

	return data, nil
}

func parsePaddingMode(padding string) (cripta.PaddingMode, error) {
	switch padding {
	case "pkcs7":
		return cripta.PaddingModePKCS7, nil
	case "ansi":
		return cripta.PaddingModeANSIX923, nil
	case "iso":
		return cripta.PaddingModeISO10126, nil
	default:
		return 0, fmt.Errorf("неизвестный режим набивки: %s", padding)
	}
}

// jsonTracer пишет события трассировки построчно в формате JSON.
type jsonTracer struct {
	w   io.Writer
	err error
}

func newJSONTracer(w io.Writer) *jsonTracer {
	return &jsonTracer{w: w}
}

func (t *jsonTracer) TraceBlock(b cripta.BlockTrace) {
	t.write(&blockEvent{b})
}

func (t *jsonTracer) TraceRound(r cripta.RoundTrace) {
	t.write(&roundEvent{r})
}

func (t *jsonTracer) write(v gojay.MarshalerJSONObject) {
	if t.err != nil {
		return
	}
	line, err := gojay.MarshalJSONObject(v)
	if err != nil {
		t.err = err
		return
	}
	_, t.err = t.w.Write(append(line, '\n'))
}

type blockEvent struct {
	cripta.BlockTrace
}

func (e *blockEvent) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("event", "block")
	enc.IntKey("index", e.Index)
	enc.BoolKey("decrypt", e.Decrypt)
	enc.StringKey("input", hex.EncodeToString(e.Input))
	enc.StringKey("previous", hex.EncodeToString(e.Previous))
	enc.StringKey("chained", hex.EncodeToString(e.Chained))
	enc.StringKey("output", hex.EncodeToString(e.Output))
}

func (e *blockEvent) IsNil() bool { return e == nil }

type roundEvent struct {
	cripta.RoundTrace
}

func (e *roundEvent) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("event", "round")
	enc.IntKey("round", e.Round)
	enc.StringKey("left", hexBits(e.Left))
	enc.StringKey("right", hexBits(e.Right))
	enc.StringKey("key", hexBits(e.RoundKey))
	enc.StringKeyOmitEmpty("expanded", hexBits(e.Steps.Expanded))
	enc.StringKeyOmitEmpty("mixed", hexBits(e.Steps.Mixed))
	enc.StringKeyOmitEmpty("substituted", hexBits(e.Steps.Substituted))
	enc.StringKeyOmitEmpty("permuted", hexBits(e.Steps.Permuted))
	enc.StringKey("newLeft", hexBits(e.NewLeft))
	enc.StringKey("newRight", hexBits(e.NewRight))
}

func (e *roundEvent) IsNil() bool { return e == nil }

func hexBits(bits cripta.Bits) string {
	data, err := cripta.BitsToBytes(bits)
	if err != nil {
		return ""
	}
	return hex.EncodeToString(data)
}
