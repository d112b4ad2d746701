package initchecker

import "fmt"

// CheckInit принимает пары "имя, зависимость" и паникует на первой неинициализированной
func CheckInit(pairs ...any) {
	if len(pairs)%2 != 0 {
		panic("CheckInit: нечетное число аргументов")
	}
	for i := 0; i < len(pairs); i += 2 {
		name, ok := pairs[i].(string)
		if !ok {
			panic("CheckInit: первый аргумент пары должен быть строкой")
		}
		if pairs[i+1] == nil {
			panic(fmt.Sprintf("зависимость %s не инициализирована", name))
		}
	}
}
