// Package ai contiene los adaptadores hacia los servicios generativos de texto.
package ai

// systemPrompt rol común a todos los proveedores. El formato concreto lo define el prompt del caso de uso.
const systemPrompt = `あなたは日本の家庭料理に精通したシェフです。
指示された JSON オブジェクトのみを返してください。説明文やマークダウンは不要です。`
